package store

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/metrics"
	"os"
	"path/filepath"
	"reflect"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

func newJsonFile(name string, path string) *jsonFile {
	return &jsonFile{
		name: name,
		path: path,
	}
}

func (f *jsonFile) exists() (bool, error) {
	_, err := os.Stat(f.path)

	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, f.fail("stat", err, ErrIO)
}

func (f *jsonFile) read() (map[string]interface{}, error) {
	data, err := os.ReadFile(f.path)

	if err != nil {
		return nil, f.fail("read", err, ErrIO)
	}

	var parsed map[string]interface{}

	err = json.Unmarshal(data, &parsed)

	if err != nil {
		return nil, f.fail("parse", err, ErrParse)
	}

	if parsed == nil {
		return nil, f.fail("parse", fmt.Errorf("content is not a JSON object"), ErrParse)
	}

	return parsed, nil
}

// write replaces the file through a rename so readers only ever see complete JSON.
func (f *jsonFile) write(data map[string]interface{}) error {
	compact, err := json.Marshal(data)

	if err != nil {
		return f.fail("encode", err, ErrParse)
	}

	var indented bytes.Buffer

	err = stdjson.Indent(&indented, compact, "", "  ")

	if err != nil {
		return f.fail("encode", err, ErrParse)
	}

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, 0750)

	if err != nil {
		return f.fail("write", err, ErrIO)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s.*", filepath.Base(f.path)))

	if err != nil {
		return f.fail("write", err, ErrIO)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(indented.Bytes())

	if err == nil {
		err = tmp.Chmod(0600)
	}

	if err == nil {
		err = tmp.Sync()
	}

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmp.Name(), f.path)
	}

	if err != nil {
		return f.fail("write", err, ErrIO)
	}

	err = helpers.ChownToRealUser(f.path)

	if err != nil {
		return f.fail("write", err, ErrIO)
	}

	metrics.StoreWrites.Increment(f.name)

	return nil
}

func (f *jsonFile) fail(op string, err error, kinds ...error) error {
	metrics.StoreErrors.Increment(f.name, op)
	return newError(op, f.path, err, kinds...)
}

// normalize gives value the shape it has after a round trip through the file.
func normalize(value interface{}) (interface{}, error) {
	encoded, err := json.Marshal(value)

	if err != nil {
		return nil, err
	}

	var normalized interface{}

	err = json.Unmarshal(encoded, &normalized)

	return normalized, err
}

func equal(stored interface{}, value interface{}) (bool, error) {
	normalized, err := normalize(value)

	if err != nil {
		return false, err
	}

	return reflect.DeepEqual(stored, normalized), nil
}
