package panel

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.StylesheetURL}}">
</head>
<body>
<div class="min-h-screen bg-gradient-to-br flex items-center justify-center p-4">
<div class="max-w-2xl w-full bg-white rounded-2xl shadow-xl p-8 motion-enter"{{if .LiveURL}} data-live="{{.LiveURL}}"{{end}} data-panel>
<div class="text-center">
<h1 class="text-4xl font-bold text-indigo-600 mb-4 motion-title">{{.Title}}</h1>
<div class="text-gray-600 mb-8">{{.Description}}</div>
<div class="grid grid-cols-1 md:grid-cols-3 gap-4 mb-8">
{{- range .Features}}
<div class="p-6 bg-indigo-50 rounded-lg motion-hover" data-feature="{{.Label}}">
{{.Icon}}
<h3 class="font-semibold text-gray-800">{{.Label}}</h3>
</div>
{{- end}}
</div>
{{template "button" .}}
</div>
</div>
</div>
<script src="{{.ScriptURL}}" defer></script>
</body>
</html>
{{define "button"}}<button type="button" class="px-6 py-3 bg-indigo-600 text-white rounded-lg font-semibold shadow-md hover:bg-indigo-700 transition-colors motion-hover motion-tap" data-counter data-count="{{.Count}}">{{.Label}}</button>{{end}}`
