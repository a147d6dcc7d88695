package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/alama/core/grade"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db  *sql.DB
	svc *grade.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run database migrations (up, down, status, ...)")
	fmt.Println("  export [-file PATH]    - export the gradebook as JSON (stdout by default)")
	fmt.Println("  import -file PATH      - replace the gradebook with a previously exported file")
	fmt.Println("  summary                - print the SGPA/CGPA table")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFile := exportCmd.String("file", "", "Destination path. Prints to stdout when omitted.")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "Path of a previously exported gradebook.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.export(*exportFile)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importBook(*importFile)
	case "summary":
		return cli.summary()
	default:
		cli.printUsage()
		return errHelp
	}
}
