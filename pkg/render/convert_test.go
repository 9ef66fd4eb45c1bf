package render

import (
	"context"
	"testing"

	"github.com/matzehuels/babelgraph/pkg/errors"
)

func TestConvertWithoutTool(t *testing.T) {
	old := converter
	converter = "babelgraph-no-such-converter"
	defer func() { converter = old }()

	for name, convert := range map[string]func() ([]byte, error){
		"pdf": func() ([]byte, error) { return ToPDF(context.Background(), []byte("<svg/>")) },
		"png": func() ([]byte, error) { return ToPNG(context.Background(), []byte("<svg/>"), 2) },
	} {
		_, err := convert()
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("%s: err = %v, want code %s", name, err, errors.ErrCodeUnsupported)
		}
	}
}
