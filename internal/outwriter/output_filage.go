package outwriter

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/vigil/internal/contract"
	"github.com/huangsam/vigil/schema"
)

// WriteRecordTable renders the per-file breakdown shown in verbose mode.
func WriteRecordTable(records []schema.FileRecord, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"File", "Age", "Unit", "Warn", "Crit", "Status"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Fixed columns plus borders and padding leave the rest for the path.
	pathWidth := getTerminalWidth(cfg) - 45
	if pathWidth < 15 {
		pathWidth = 15
	}

	var data [][]string
	for _, rec := range records {
		data = append(data, []string{
			TruncatePath(rec.Path, pathWidth),
			strconv.FormatInt(rec.SelectedAge, 10),
			string(rec.Unit),
			strconv.FormatInt(rec.WarnThreshold, 10),
			strconv.FormatInt(rec.CritThreshold, 10),
			contract.GetColorStatus(rec.Classification),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
