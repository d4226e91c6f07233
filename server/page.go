package server

import "html/template"

// pageData carries the values substituted into the status page.
type pageData struct {
	RuntimeVersion string
	Host           string
	Port           int
	Hostname       string
	Platform       string
	Uptime         string
	WorkingDir     string
	RequestPath    string
	ServerTime     string
}

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>webdiag Test Server</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .success { color: green; font-weight: bold; }
        .info { background-color: #f8f9fa; padding: 10px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Server is Running!</h1>
    <p class="success">If you can see this page, the server is working correctly.</p>

    <div class="info">
        <h2>Server Information</h2>
        <p>Server: webdiag on {{.RuntimeVersion}}</p>
        <p>Host: {{.Host}}</p>
        <p>Port: {{.Port}}</p>
        <p>Hostname: {{.Hostname}}</p>
        <p>Platform: {{.Platform}}</p>
        <p>Uptime: {{.Uptime}}</p>
        <p>Working Directory: {{.WorkingDir}}</p>
        <p>Request Path: {{.RequestPath}}</p>
        <p>Server Time: {{.ServerTime}}</p>
    </div>
</body>
</html>
`))
