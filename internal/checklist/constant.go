package checklist

const (
	linePrefix   = "- ["
	statusSuffix = "] "

	// StatusUnchecked and StatusChecked are the only markers ever written.
	StatusUnchecked = ' '
	StatusChecked   = 'x'

	CheckboxUnchecked = "- [ ]"
	CheckboxChecked   = "- [x]"

	lineSeparator  = "\n"
	carriageReturn = "\r"
)
