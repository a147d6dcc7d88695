package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core/grade"
)

func (cli *commandLine) export(path string) error {
	data, err := grade.ExportJSON(cli.svc.Book())
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Printf("gradebook exported to %s\n", path)
	return nil
}
