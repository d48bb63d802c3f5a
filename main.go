// The main package for the ufcscrape executable.
package main

import "github.com/JakeFAU/ufc-athletes/cmd"

func main() {
	cmd.Execute()
}
