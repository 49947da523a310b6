package main

import (
	"errors"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/datebands"
	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
	cli "gopkg.in/urfave/cli.v1"
)

// createDateBandsAction runs the date-band pipeline against the XML metadata
// file named by --xml. Any failure aborts with a non-zero exit.
func createDateBandsAction(c *cli.Context) error {
	xmlFile := c.String("xml")
	if xmlFile == "" {
		return errors.New("the --xml input metadata file is a required argument")
	}

	logCtx := &util.BasicLogContext{}
	util.LogAudit(logCtx, util.LogAuditInput{Actor: "createDateBandsAction", Action: "create date bands", Actee: xmlFile, Severity: util.INFO})

	if err := datebands.Run(xmlFile); err != nil {
		util.LogAlert(logCtx, "Creating date bands for "+xmlFile+": "+err.Error())
		return err
	}
	return nil
}
