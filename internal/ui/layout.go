package ui

// Layout dimensions.
const (
	// SidebarWidth is the sidebar width including its border.
	SidebarWidth = 32

	// SidebarMinWidth is used on narrow terminals.
	SidebarMinWidth = 20

	// LayoutCompactWidth is the threshold below which the narrow sidebar is used.
	LayoutCompactWidth = 80

	// chromeHeight covers the header and footer lines.
	chromeHeight = 2
)

func sidebarWidth(total int) int {
	if total < LayoutCompactWidth {
		return SidebarMinWidth
	}
	return SidebarWidth
}
