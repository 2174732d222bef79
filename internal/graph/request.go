// Package graph builds, launches, and renders graph windows.
//
// A Request describes what to plot. The Launcher hands requests to an
// external renderer process; the SVG functions implement the rendering side
// consumed by 'statbar render'.
package graph

// Request is the serialized configuration handed to the graph renderer.
// The schema is shared with external renderer implementations, so field
// names are load-bearing.
type Request struct {
	Title      string  `json:"title"`
	Color      string  `json:"color"`
	Color2     string  `json:"color2,omitempty"`
	MaxValue   float64 `json:"max_value"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	DataSource string  `json:"data_source"`

	// Seed series so the window has content before live data arrives.
	InitialData  []float64 `json:"initial_data,omitempty"`
	InitialData2 []float64 `json:"initial_data2,omitempty"`

	PositionX int `json:"position_x"`
	PositionY int `json:"position_y"`

	// MultiChart plots InitialData2 as a second series (e.g. upload
	// alongside download).
	MultiChart bool `json:"multi_chart"`

	// Advanced requests the detailed breakdown view where the data source
	// supports one (memory).
	Advanced bool `json:"advanced"`

	// OutputPath is where 'statbar render' writes the SVG. Ignored by
	// window renderers.
	OutputPath string `json:"output_path,omitempty"`
}

// DefaultRequest returns a request with the renderer's defaults filled in.
func DefaultRequest() Request {
	return Request{
		Title:      "System Graph",
		Color:      "#89b4fa",
		MaxValue:   100,
		Width:      300,
		Height:     100,
		DataSource: "cpu",
	}
}
