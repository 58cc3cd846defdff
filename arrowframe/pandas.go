package arrowframe

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/tidwall/gjson"

	"github.com/domonda/go-gridview"
)

// PandasMetadataKey is the schema metadata key
// under which pandas stores its JSON metadata.
const PandasMetadataKey = "pandas"

// unnamedIndexPrefix marks index columns
// that had no name in pandas.
const unnamedIndexPrefix = "__index_level_"

// applyPandasMetadata moves the columns listed as "index_columns"
// in the pandas metadata into the index of frame.
// Range indexes are stored as metadata objects instead of columns
// and stay implicit.
func applyPandasMetadata(frame *gridview.Frame, md arrow.Metadata) (*gridview.Frame, error) {
	i := md.FindKey(PandasMetadataKey)
	if i < 0 {
		return frame, nil
	}
	meta := md.Values()[i]
	if !gjson.Valid(meta) {
		return frame, nil
	}

	var names []string
	gjson.Get(meta, "index_columns").ForEach(func(_, col gjson.Result) bool {
		if col.Type == gjson.String {
			names = append(names, col.String())
		}
		return true
	})
	if len(names) == 0 {
		return frame, nil
	}
	frame, err := frame.WithIndex(names...)
	if err != nil {
		return nil, err
	}
	for l := range frame.Index.Levels {
		if strings.HasPrefix(frame.Index.Levels[l].Name, unnamedIndexPrefix) {
			frame.Index.Levels[l].Name = ""
		}
	}
	return frame, nil
}
