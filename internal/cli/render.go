package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/statbar/statbar/internal/errors"
	"github.com/statbar/statbar/internal/graph"
)

// renderCommand renders a graph request file (or stdin) to SVG.
func renderCommand(path, outputFlag string) error {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Couldn't read request file "+path,
				"Check the path is correct")
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Couldn't read request from stdin",
				"Pass a request file path or pipe JSON in")
		}
	}

	var req graph.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Invalid graph request",
			"Check the JSON matches the graph request schema")
	}

	output := req.OutputPath
	if outputFlag != "" {
		output = outputFlag
	}
	if output == "" {
		return errors.New(errors.ErrRender,
			"No output path in request",
			"Set output_path in the request or pass --output")
	}

	svg := graph.RenderSVG(req)
	if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't write SVG to "+output,
			"Check directory permissions")
	}

	fmt.Println(output)
	return nil
}
