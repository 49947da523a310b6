package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/metadata"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
	cli "gopkg.in/urfave/cli.v1"
)

// footprintAction renders the scene footprint as a GeoJSON feature, to
// stdout or to the file named by --output
func footprintAction(c *cli.Context) error {
	xmlFile := c.String("xml")
	if xmlFile == "" {
		return errors.New("the --xml input metadata file is a required argument")
	}

	if err := metadata.Validate(xmlFile); err != nil {
		return err
	}
	meta, err := metadata.Parse(xmlFile)
	if err != nil {
		return err
	}

	feature, err := meta.GeoJSONFeature()
	if err != nil {
		util.LogAlert(&util.BasicLogContext{}, "Building footprint for "+xmlFile+": "+err.Error())
		return err
	}

	if outFile := c.String("output"); outFile != "" {
		if err := os.WriteFile(outFile, []byte(feature.String()), 0644); err != nil {
			return fmt.Errorf("writing footprint file %s: %v", outFile, err)
		}
		return nil
	}
	fmt.Fprintln(c.App.Writer, feature.String())
	return nil
}
