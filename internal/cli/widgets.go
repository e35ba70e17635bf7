package cli

import (
	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/pkg/config"
	"github.com/iheanyi/bubblers/pkg/output"
	"github.com/iheanyi/bubblers/pkg/tui"
)

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "List the widget kinds an app file can use",
	Long: `List the widget kinds accepted by app files, whether each returns a
value, and the fields that configure it.

Examples:
  bubblers widgets
  bubblers widgets --spinners   # List loader spinner styles`,
	Args: cobra.NoArgs,
	RunE: runWidgets,
}

var widgetsSpinners bool

func init() {
	widgetsCmd.Flags().BoolVar(&widgetsSpinners, "spinners", false, "List loader spinner styles instead")
}

type widgetInfo struct {
	Kind    string
	Returns bool
	Fields  string
}

var widgetCatalog = []widgetInfo{
	{config.WidgetInput, true, "label, placeholder, initial_text"},
	{config.WidgetTextArea, true, "label, visible_lines"},
	{config.WidgetLoader, false, "message, style, duration"},
	{config.WidgetTable, false, "headers, rows"},
	{config.WidgetProgressBar, false, "prefix, progress, length, start_color, end_color"},
	{config.WidgetTimer, false, "duration"},
	{config.WidgetStopwatch, false, ""},
	{config.WidgetViewport, false, "file"},
	{config.WidgetItemList, true, "title, items"},
	{config.WidgetMenuList, true, "title, subtitle, menu_items"},
}

func runWidgets(cmd *cobra.Command, args []string) error {
	if widgetsSpinners {
		t := output.NewTable("Style")
		t.Out = cmd.OutOrStdout()
		for _, name := range tui.SpinnerStyleNames() {
			t.AddRow(name)
		}
		t.Render()
		return nil
	}

	t := output.NewTable("Widget", "Returns", "Fields")
	t.Out = cmd.OutOrStdout()
	for _, w := range widgetCatalog {
		returns := "no"
		if w.Returns {
			returns = "yes"
		}
		t.AddRow(w.Kind, returns, w.Fields)
	}
	t.Render()
	return nil
}
