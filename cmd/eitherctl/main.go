// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command eitherctl parses integer tokens into Left/Right values.
//
//	eitherctl eval 4 x --square      # ok 16, error parse: ...
//	eitherctl sum --strict < numbers.txt
package main

import (
	"os"

	"go.uber.org/zap"

	"code.hybscloud.com/either/internal/cli"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	app := cli.New(nil)
	if err := app.Command(Version).Execute(); err != nil {
		app.Logger().Error("command failed", zap.Error(err))
		_ = app.Logger().Sync()
		os.Exit(1)
	}
	_ = app.Logger().Sync()
}
