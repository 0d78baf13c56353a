// shapegen renders synthetic colored-shape images with YOLO detection labels.
package main

import "github.com/ironsheep/shapegen/internal/cli"

func main() {
	cli.Execute()
}
