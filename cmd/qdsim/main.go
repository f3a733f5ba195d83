// Command qdsim sweeps classical multi-dot charge systems and renders,
// stores and lists the resulting charge-stability diagrams.
package main

func main() {
	Execute()
}
