package parsing

import "github.com/JeyZu/FreelanceFinder/internal/dom"

// MainHeading returns the first h1 under root, else the first h2.
func MainHeading(root dom.Node) dom.Node {
	if root == nil {
		return nil
	}
	if h1 := root.FindFirst("h1"); h1 != nil {
		return h1
	}
	return root.FindFirst("h2")
}
