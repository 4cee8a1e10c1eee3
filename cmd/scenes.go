package cmd

import (
	"bytes"

	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the registered scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeSceneTable(&buf, scene.List())
	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}

func writeSceneTable(buf *bytes.Buffer, infos []scene.SceneInfo) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()
}
