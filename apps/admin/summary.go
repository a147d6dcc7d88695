package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

func (cli *commandLine) summary() error {
	sum := cli.svc.Summary()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEMESTER\tSGPA\tCGPA")
	for _, s := range sum.Semesters {
		fmt.Fprintf(w, "%s\t%v\t%v\n", s.Semester, s.SGPA, s.CGPA)
	}
	fmt.Fprintf(w, "\t\t\nCUMULATIVE\t\t%v\n", sum.CGPA)
	return w.Flush()
}
