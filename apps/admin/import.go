package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core/grade"
)

func (cli *commandLine) importBook(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	// all-or-nothing: a malformed file leaves the current gradebook untouched
	book, err := grade.ParseImport(data)
	if err != nil {
		return err
	}
	if err := cli.svc.Restore(book); err != nil {
		return err
	}
	fmt.Printf("gradebook imported from %s\n", path)
	return nil
}
