// Copyright 2019, BeamIO, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/BeamIO-Inc/espa-product-formatter-sub001/util"
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "create_date_bands",
		Aliases: []string{"d"},
		Usage:   "Create the combined date, DOY, and year bands for the scene described by the input XML metadata file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "xml",
				Usage: "name of the input XML metadata file which follows the ESPA internal raw binary schema",
			},
		},
		Action: createDateBandsAction,
	},
	cli.Command{
		Name:    "footprint",
		Aliases: []string{"f"},
		Usage:   "Print the scene footprint from the input XML metadata file as a GeoJSON feature",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "xml",
				Usage: "name of the input XML metadata file which follows the ESPA internal raw binary schema",
			},
			cli.StringFlag{
				Name:  "output",
				Usage: "write the GeoJSON feature to this file instead of stdout",
			},
		},
		Action: footprintAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the product formatter",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "espa-product-formatter"
	app.Usage = "Generate derived bands and metadata for ESPA scene products"
	app.Version = util.ESPACommonVersion
	app.Commands = commands
	return
}

func versionAction(c *cli.Context) {
	fmt.Fprintln(c.App.Writer, util.ESPACommonVersion)
}
