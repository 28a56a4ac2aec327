// Command eproc queries and browses eProcurement feature data from the
// command line.
package main

import "github.com/sweengineeringlabs/eprocurement-sub002/internal/cli"

func main() {
	cli.Execute()
}
