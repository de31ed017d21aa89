package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for comparison results, rounded for display
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var data []byte
	var err error

	rounded := compSet.Rounded()
	if jf.Pretty {
		data, err = json.MarshalIndent(rounded, "", "  ")
	} else {
		data, err = json.Marshal(rounded)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
