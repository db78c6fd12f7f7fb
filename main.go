package main

import "github.com/jobsync/skillmatch/cmd"

func main() {
	cmd.Execute()
}
