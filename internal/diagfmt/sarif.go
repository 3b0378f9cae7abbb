package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"decaf/internal/diag"
	"decaf/internal/source"
)

// SARIF 2.1.0 constants
const (
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifVersion   = "2.1.0"
)

// SarifReport is the top-level SARIF document.
type SarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Invocations []SarifInvocation `json:"invocations,omitempty"`
	Results     []SarifResult     `json:"results"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []SarifRule `json:"rules,omitempty"`
}

type SarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription SarifMessage `json:"shortDescription"`
}

type SarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations,omitempty"`
}

type SarifMessage struct {
	Text string `json:"text"`
}

type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           *SarifRegion          `json:"region,omitempty"`
}

type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifRegion columns are 1-based; EndColumn is exclusive.
type SarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn,omitempty"`
	EndLine     uint32 `json:"endLine,omitempty"`
	EndColumn   uint32 `json:"endColumn,omitempty"`
}

// BuildSarif converts the bag into a single-run SARIF report. Rules are
// the distinct codes seen, sorted by ID.
func BuildSarif(bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) SarifReport {
	name := meta.ToolName
	if name == "" {
		name = "decaf"
	}

	seen := make(map[diag.Code]bool)
	results := make([]SarifResult, 0, bag.Len())
	for _, d := range bag.Items() {
		seen[d.Code] = true
		res := SarifResult{
			RuleID:  d.Code.ID(),
			Level:   d.Severity.Label(),
			Message: SarifMessage{Text: d.Message},
		}
		if uri := sarifURI(fs, d.Primary.File); uri != "" {
			pl := SarifPhysicalLocation{ArtifactLocation: SarifArtifactLocation{URI: uri}}
			if loc, ok := locate(&d, fs); ok && loc.Line() > 0 {
				pl.Region = sarifRegion(loc)
			}
			res.Locations = []SarifLocation{{PhysicalLocation: pl}}
		}
		results = append(results, res)
	}

	codes := make([]diag.Code, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	rules := make([]SarifRule, 0, len(codes))
	for _, c := range codes {
		rules = append(rules, SarifRule{
			ID:               c.ID(),
			Name:             strings.ReplaceAll(c.Title(), " ", ""),
			ShortDescription: SarifMessage{Text: c.Title()},
		})
	}

	run := SarifRun{
		Tool: SarifTool{Driver: SarifDriver{
			Name:    name,
			Version: meta.ToolVersion,
			Rules:   rules,
		}},
		Results: results,
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []SarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: !bag.HasErrors(),
		}}
	}

	return SarifReport{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SarifRun{run},
	}
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0)
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSarif(bag, fs, meta))
}

func sarifRegion(loc source.Location) *SarifRegion {
	r := &SarifRegion{StartLine: loc.First.Line, EndLine: loc.Last.Line}
	if loc.HasColumns() {
		r.StartColumn = loc.First.Col
		r.EndColumn = loc.Last.Col + 1
	}
	return r
}

// sarifURI uses forward slashes so the report is portable.
func sarifURI(fs *source.FileSet, id source.FileID) string {
	if fs == nil {
		return ""
	}
	f, ok := fs.Lookup(id)
	if !ok {
		return ""
	}
	return filepath.ToSlash(f.Path)
}
