package main

import "github.com/kayan-consulting/kayan/cmd"

func main() {
	cmd.Execute()
}
