package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tably/tably/internal/input"
	"github.com/tably/tably/internal/store"
	"github.com/tably/tably/internal/table"
	"github.com/tably/tably/internal/util"
)

// renderOptions collects the flags shared by the commands that emit a
// table.
type renderOptions struct {
	style    string
	centered bool
	padding  int
	output   string
}

func (o renderOptions) config() table.Config {
	return table.Config{
		Centered: o.centered,
		Padding:  o.padding,
		Style:    o.style,
	}
}

// runRender implements 'tably render'.
func runRender(path string, inputFormatStr string, headerRow bool,
	labels []string, selectors []string, opts renderOptions, format outputFormat) {

	var reader io.Reader = os.Stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			util.Die("%s: %s", path, err)
		}
		defer file.Close()
		reader = file
	}

	inputFormat := input.DetectFormat(path)
	if inputFormatStr != "" {
		var err error
		inputFormat, err = input.ParseFormat(inputFormatStr)
		if err != nil {
			util.Die("Error: %s", err)
		}
	}

	doc, err := input.Read(reader, inputFormat)
	if err != nil {
		util.Die("%s", err)
	}

	rows := doc.Rows
	docLabels := doc.Labels
	if headerRow {
		if len(rows) == 0 {
			util.Die("--header given but the input has no rows")
		}
		docLabels = table.Stringify(rows[0])
		rows = rows[1:]
	}
	if len(labels) > 0 {
		docLabels = labels
	}

	cfg := opts.config()
	cfg.Labels = docLabels
	tbl, err := table.New(rows, cfg)
	if err != nil {
		util.Die("%s", err)
	}

	if len(selectors) > 0 {
		tbl = selectColumns(tbl, selectors)
	}

	emit(tbl, format, opts.output)
}

// selectColumns narrows tbl to the chosen columns. When every
// selector parses as an integer the selection is positional;
// otherwise all selectors are treated as labels.
func selectColumns(tbl *table.Table, selectors []string) *table.Table {
	positions := make([]int, 0, len(selectors))
	positional := true
	for _, selector := range selectors {
		n, err := strconv.Atoi(selector)
		if err != nil {
			positional = false
			break
		}
		positions = append(positions, n)
	}

	var key table.Key
	if positional {
		key = table.Columns(positions)
	} else {
		key = table.Labels(selectors)
	}

	result, err := tbl.Select(key)
	if err != nil {
		util.Die("%s", err)
	}
	return result.(*table.Table)
}

// runStyles implements 'tably styles'. With no arguments it previews
// every registered style; with --save it persists a default style for
// later runs.
func runStyles(save string) {
	if save != "" {
		if _, err := table.StyleNamed(save); err != nil {
			util.Die("%s", err)
		}
		defaults := store.Read()
		defaults.Style = save
		defaults.Write()
		util.ProgressMsg(fmt.Sprintf("saved default style %q", save))
		return
	}

	for _, name := range table.StyleNames() {
		cfg := table.DefaultConfig()
		cfg.Style = name
		cfg.Labels = []string{"style", "sample"}
		tbl, err := table.New([][]any{{name, "abc 123"}}, cfg)
		if err != nil {
			util.Panicf("styles: preview failed for %q: %s", name, err)
		}
		fmt.Println(tbl.String())
	}
}

// runSQL implements 'tably sql'. The database is opened read-only and
// the result set's column names become the table labels.
func runSQL(database string, query string, opts renderOptions, format outputFormat) {
	if !util.FileExists(database) {
		util.Die("no such database: %s", database)
	}

	db, err := sql.Open("sqlite3", "file:"+database+"?mode=ro")
	if err != nil {
		util.Die("%s: %s", database, err)
	}
	defer db.Close()

	result, err := db.Query(query)
	if err != nil {
		util.Die("query: %s", err)
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		util.Die("query: %s", err)
	}

	var rows [][]any
	for result.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := result.Scan(pointers...); err != nil {
			util.Die("query: %s", err)
		}
		row := make([]any, len(columns))
		for i, value := range values {
			switch v := value.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(v)
			default:
				row[i] = v
			}
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		util.Die("query: %s", err)
	}

	cfg := opts.config()
	cfg.Labels = columns
	tbl, err := table.New(rows, cfg)
	if err != nil {
		util.Die("%s", err)
	}

	emit(tbl, format, opts.output)
}

// renderedDocument is the JSON shape emitted by --format=json.
type renderedDocument struct {
	Labels []string   `json:"labels,omitempty"`
	Rows   [][]string `json:"rows"`
}

// emit writes the table to outputPath (atomically) when given, and to
// stdout otherwise. Wide box-drawn output is paged.
func emit(tbl *table.Table, format outputFormat, outputPath string) {
	var text string
	switch format {
	case outputFormatTable:
		text = tbl.String() + "\n"
	case outputFormatJSON:
		doc := renderedDocument{Labels: tbl.Labels()}
		for i := 0; i < tbl.NumRows(); i++ {
			row, err := tbl.RowAt(i)
			if err != nil {
				panic(err)
			}
			doc.Rows = append(doc.Rows, row)
		}
		if doc.Rows == nil {
			doc.Rows = [][]string{}
		}
		encoded, err := json.Marshal(doc)
		if err != nil {
			panic(err)
		}
		text = string(encoded) + "\n"
	}

	if outputPath != "" {
		util.TryWriteAtomic(outputPath, []byte(text))
		return
	}

	if format == outputFormatTable {
		printOrPage(text, displayWidth(text))
	} else {
		fmt.Print(text)
	}
}

func displayWidth(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}
