package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"babel.openfisca.ca/internal/appconf"
	"babel.openfisca.ca/internal/parameters"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   dumper.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type parameterDump struct {
	Name    string
	Entries []parameters.Entry
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "variables":
		data = webUI.Variables.List()
		title = "Rule set - Variables"
	case "parameters":
		var dump []parameterDump
		for _, name := range webUI.Parameters.Names() {
			dump = append(dump, parameterDump{Name: name, Entries: webUI.Parameters.Entries(name)})
		}
		data = dump
		title = "Rule set - Parameters"
	case "tables":
		counts, err := webUI.Storage.TableCounts()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = counts
		title = "Parameter database - Table counts"
	case "config":
		data = redactedConfig(webUI.Config)
		title = "Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: variables, parameters, tables, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func redactedConfig(config appconf.Config) appconf.Config {
	redacted := config
	redacted.ApiKeys = make([]string, len(config.ApiKeys))
	for i := range redacted.ApiKeys {
		redacted.ApiKeys[i] = "<redacted>"
	}
	return redacted
}
