// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletvm/plan"
	"github.com/ava-labs/palletvm/runtime"
	"github.com/ava-labs/palletvm/utils"
)

func printResult(w io.Writer, res *plan.Result) {
	step := res.Step
	utils.Foutf(w, "{{yellow}}step %d{{/}} {{bold}}%s{{/}}", res.Index, step.Action)
	if len(step.Description) > 0 {
		utils.Foutf(w, " (%s)", step.Description)
	}
	if res.Err != nil {
		if name := plan.ErrorName(res.Err); len(name) > 0 {
			utils.Foutf(w, " {{red}}failed [%s]:{{/}} %v\n", name, res.Err)
		} else {
			utils.Foutf(w, " {{red}}failed:{{/}} %v\n", res.Err)
		}
	} else {
		utils.Foutf(w, " {{green}}ok{{/}}\n")
	}
	if res.Snapshot != nil {
		utils.Foutf(w, "%s\n", res.Snapshot.String())
	}
}

func printSnapshot(w io.Writer, s runtime.DefaultSnapshot, asYAML bool) error {
	if !asYAML {
		utils.Foutf(w, "%s\n", s.String())
		return nil
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
