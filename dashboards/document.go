// Package dashboards builds grafana dashboard documents for a set of
// networks. Builders are pure: the same network ID set always produces the
// same document, and nothing here performs I/O.
package dashboards

import "encoding/json"

// Document is a grafana dashboard definition.
type Document struct {
	UID           string     `json:"uid"`
	Title         string     `json:"title"`
	Tags          []string   `json:"tags"`
	Editable      bool       `json:"editable"`
	SchemaVersion int        `json:"schemaVersion"`
	Templating    Templating `json:"templating"`
	Panels        []Panel    `json:"panels"`
}

// Templating holds the dashboard's template variables.
type Templating struct {
	List []TemplateVariable `json:"list"`
}

// TemplateVariable is a custom variable over the provisioned network IDs.
type TemplateVariable struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Query      string `json:"query"`
	IncludeAll bool   `json:"includeAll"`
	Multi      bool   `json:"multi"`
	Current    Option `json:"current"`
}

// Option is a selected template variable value.
type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Panel is a single graph panel.
type Panel struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	Targets []Target `json:"targets"`
	GridPos GridPos  `json:"gridPos"`
}

// Target is one query on a panel.
type Target struct {
	Expr         string `json:"expr"`
	LegendFormat string `json:"legendFormat,omitempty"`
}

// GridPos places a panel on the dashboard grid.
type GridPos struct {
	H int `json:"h"`
	W int `json:"w"`
	X int `json:"x"`
	Y int `json:"y"`
}

// MarshalRaw renders the document for a dashboard post body.
func (d Document) MarshalRaw() json.RawMessage {
	b, err := json.Marshal(d)
	if err != nil {
		// The document model contains only marshalable types.
		panic(err)
	}
	return b
}

// Builder produces a dashboard document from the desired network ID set.
type Builder func(networkIDs []string) Document

const schemaVersion = 16

// networkVariable is the template variable every dashboard is parameterized by.
func networkVariable(networkIDs []string) TemplateVariable {
	query := ""
	for i, id := range networkIDs {
		if i > 0 {
			query += ","
		}
		query += id
	}
	v := TemplateVariable{
		Name:       "networkID",
		Type:       "custom",
		Query:      query,
		IncludeAll: true,
		Multi:      true,
	}
	if len(networkIDs) > 0 {
		v.Current = Option{Text: networkIDs[0], Value: networkIDs[0]}
	}
	return v
}

// newDocument assembles a document and lays panels out two per row.
func newDocument(uid, title string, networkIDs []string, panels []Panel) Document {
	for i := range panels {
		panels[i].ID = i + 1
		panels[i].Type = "graph"
		panels[i].GridPos = GridPos{
			H: 8,
			W: 12,
			X: (i % 2) * 12,
			Y: (i / 2) * 8,
		}
	}
	return Document{
		UID:           uid,
		Title:         title,
		Tags:          []string{"magma"},
		Editable:      false,
		SchemaVersion: schemaVersion,
		Templating: Templating{
			List: []TemplateVariable{networkVariable(networkIDs)},
		},
		Panels: panels,
	}
}

func panel(title string, targets ...Target) Panel {
	return Panel{Title: title, Targets: targets}
}
