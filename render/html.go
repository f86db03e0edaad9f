package render

import (
	"encoding/json"
	"fmt"
	"os"
)

const plotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

// WriteHTML saves the figure as a standalone interactive document: the
// figure JSON embedded next to a CDN copy of the plotting runtime, so the
// file opens in any browser with no toolchain around it.
func WriteHTML(fig *Figure, title, path string) error {
	figJSON, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("failed to encode figure: %w", err)
	}
	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <script src="%s"></script>
    <style>
        body { margin: 0; background: rgb(255, 255, 255); }
        #diagram { width: 100vw; height: 100vh; }
    </style>
</head>
<body>
<div id="diagram"></div>
<script>
const fig = %s;
Plotly.newPlot('diagram', fig.data, fig.layout, {responsive: true});
</script>
</body>
</html>
`, title, plotlyCDN, string(figJSON))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}
