package ui

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/me/goseek/internal/render"
	"github.com/me/goseek/pkg/sched"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"arrow": func(seq []sched.Cylinder) string {
		return render.Sequence(seq)
	},
}

// renderTemplate renders a content template inside the shared layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Shared components referenced by the content templates.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err = tmpl.New(filepath.Base(compName)).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content, keyed by page name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                        GoSeek
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        <a href="/" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            Simulator
                        </a>
                        <a href="/api/v1" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            API
                        </a>
                    </div>
                </div>
            </div>
        </div>
    </nav>

    <main class="max-w-5xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"index": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Disk Scheduling Simulator</h1>
        <p class="mt-1 text-sm text-gray-500">Run a request queue through the classic disk-arm policies and compare their seek costs.</p>
    </div>

    {{if .Errors}}
    <div class="rounded-md bg-red-50 p-4 mb-6">
        <ul class="text-sm text-red-700 space-y-1">
            {{range .Errors}}
            <li><span class="font-medium">{{.Field}}</span>: {{.Message}}</li>
            {{end}}
        </ul>
    </div>
    {{end}}

    <form action="/simulate" method="POST" class="bg-white shadow sm:rounded-lg">
        <div class="px-4 py-5 sm:p-6">
            <div class="grid grid-cols-1 gap-4 sm:grid-cols-4">
                <div>
                    <label for="head" class="block text-sm font-medium text-gray-700">Head position</label>
                    <input type="text" name="head" id="head" value="{{.Form.Head}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
                <div>
                    <label for="disk_size" class="block text-sm font-medium text-gray-700">Disk size</label>
                    <input type="text" name="disk_size" id="disk_size" value="{{.Form.DiskSize}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
                <div class="sm:col-span-2">
                    <label for="requests" class="block text-sm font-medium text-gray-700">Request queue</label>
                    <input type="text" name="requests" id="requests" value="{{.Form.Requests}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm font-mono"
                           placeholder="98,183,37,122">
                </div>
                <div>
                    <label for="policy" class="block text-sm font-medium text-gray-700">Policy</label>
                    <select name="policy" id="policy"
                            class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                        <option value="all" {{if eq .Form.Policy "all"}}selected{{end}}>Compare all</option>
                        {{range .Policies}}
                        <option value="{{.Name}}" {{if eq $.Form.Policy .Name}}selected{{end}}>{{.DisplayName}}</option>
                        {{end}}
                    </select>
                </div>
                <div>
                    <label for="direction" class="block text-sm font-medium text-gray-700">SCAN direction</label>
                    <select name="direction" id="direction"
                            class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                        <option value="toward-max" {{if eq .Form.Direction "toward-max"}}selected{{end}}>Toward max</option>
                        <option value="toward-min" {{if eq .Form.Direction "toward-min"}}selected{{end}}>Toward min</option>
                    </select>
                </div>
                <div>
                    <label for="count" class="block text-sm font-medium text-gray-700">Random queue length</label>
                    <input type="text" name="count" id="count" value="{{.Form.Count}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
            </div>
        </div>
        <div class="px-4 py-3 bg-gray-50 sm:rounded-b-lg sm:px-6 flex items-center justify-end space-x-3">
            <button type="submit" formaction="/random"
                    class="inline-flex justify-center py-2 px-4 border border-gray-300 shadow-sm text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
                Random queue
            </button>
            <button type="submit"
                    class="inline-flex justify-center py-2 px-4 border border-transparent shadow-sm text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-indigo-500">
                Run simulation
            </button>
        </div>
    </form>

    {{if .Results}}
    <div class="mt-8 space-y-6">
        {{if .Best}}
        <div class="rounded-md bg-green-50 p-4">
            <p class="text-sm font-medium text-green-800">
                Best policy: {{.Best}} with {{comma .BestSeek}} cylinders of total seek.
            </p>
        </div>
        {{end}}
        {{range .Results}}{{template "result_card" .}}{{end}}
    </div>
    {{end}}
</div>
{{end}}`,

	"components/result_card": `<div class="bg-white shadow sm:rounded-lg">
    <div class="px-4 py-4 sm:px-6 border-b border-gray-200 flex items-center justify-between">
        <div class="flex items-center space-x-2">
            <h3 class="text-lg leading-6 font-medium text-gray-900">{{.DisplayName}}</h3>
            {{if .Direction}}
            <span class="inline-flex items-center px-2 py-0.5 rounded text-xs font-medium bg-indigo-100 text-indigo-800">{{.Direction}}</span>
            {{end}}
            {{if .Best}}
            <span class="inline-flex items-center px-2 py-0.5 rounded text-xs font-medium bg-green-100 text-green-800">Best</span>
            {{end}}
        </div>
        <p class="text-sm text-gray-500">Total seek: <span class="font-semibold text-gray-900">{{comma .TotalSeek}}</span> cylinders</p>
    </div>
    <div class="px-4 py-4 sm:px-6">
        <p class="text-sm text-gray-600 font-mono break-words">{{arrow .Sequence}}</p>
        {{if .BoundaryStops}}
        <p class="mt-1 text-xs text-gray-500">Includes {{.BoundaryStops}} boundary stop{{if gt .BoundaryStops 1}}s{{end}} at the disk edge.</p>
        {{end}}
        <div class="mt-4">{{.Plot}}</div>
    </div>
</div>`,
}
