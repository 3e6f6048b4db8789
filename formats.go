package nbprep

// Format describes how one recognized tag renders as a panel: the Bootstrap
// panel variant, the Font Awesome icon, and an optional prolog prepended to
// the cell source before rendering.
type Format struct {
	PanelType string
	IconType  string
	Prolog    string
}

// defaultFormats returns the tag-to-panel table. "challange" is a deliberate
// alias for "challenge"; the typo is widespread in existing lesson material.
func defaultFormats() map[string]Format {
	formats := map[string]Format{
		"objectives": {PanelType: "warning", IconType: "certificate"},
		"callout":    {PanelType: "warning", IconType: "thumb-tack"},
		"challenge":  {PanelType: "success", IconType: "pencil"},
		"solution":   {PanelType: "primary", IconType: "eye"},
		"keypoints":  {PanelType: "success", IconType: "exclamation-circle"},
	}
	formats["challange"] = formats["challenge"]
	return formats
}
