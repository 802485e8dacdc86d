package utils

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner() {
	banner := figure.NewFigure("dns-doctor", "", true)
	banner.Print()
	fmt.Println(text.FgHiBlue.Sprint(" Cloud DNS forwarding-zone inspector"))
	fmt.Println()
}
