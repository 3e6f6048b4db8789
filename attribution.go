package nbprep

// attributionFlagKey marks a notebook (in its document metadata) as derived
// from the Software Carpentry curriculum; such notebooks get an attribution
// cell appended.
const attributionFlagKey = "swc_attribution"

// defaultAttribution is the license/credit notice appended as a trailing
// markdown cell.
const defaultAttribution = `---
The material in this notebook is derived from the Software Carpentry lessons
&copy; [Software Carpentry](http://software-carpentry.org/) under the terms
of the [CC-BY 4.0](https://creativecommons.org/licenses/by/4.0/) license.`

// wantsAttribution reports whether the notebook requests the attribution cell.
func wantsAttribution(nb *Notebook) bool {
	_, ok := nb.Metadata[attributionFlagKey]
	return ok
}
