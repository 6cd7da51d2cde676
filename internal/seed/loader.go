package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader reads seed documents from local paths and http(s) URLs
type Loader struct {
	client *http.Client
}

// sourceLoadResult holds the result of loading a single source
type sourceLoadResult struct {
	index int
	doc   *Document
	err   error
}

// NewLoader creates a Loader. A nil client gets a default one.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	return &Loader{client: client}
}

// Load reads all sources concurrently and merges them in source order.
// Returns error if any source fails to load.
func (l *Loader) Load(ctx context.Context, sources []string) (*Document, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no seed sources provided")
	}

	resultChan := make(chan sourceLoadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			doc, err := l.loadSource(ctx, source)
			resultChan <- sourceLoadResult{
				index: index,
				doc:   doc,
				err:   err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	docs := make([]*Document, len(sources))
	errs := make([]error, len(sources))
	for result := range resultChan {
		docs[result.index] = result.doc
		errs[result.index] = result.err
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", sources[i], err)
		}
	}

	return Merge(docs...), nil
}

func (l *Loader) loadSource(ctx context.Context, source string) (*Document, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	name := source
	var r io.Reader = rc
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gzReader, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
		name = name[:len(name)-len(".gz")]
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	return Parse(raw, formatOf(name))
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download source: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Format is the encoding of a seed document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// formatOf picks the format by extension, ignoring any URL query
func formatOf(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a seed document
func Parse(raw []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	}
	return &doc, nil
}
