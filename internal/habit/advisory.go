package habit

// Advisory is a display-only note shown on one habit while another is enabled.
// It never changes stored state.
//
// TODO: confirm with product whether NoSugar should ever exclude NoSnacks;
// until then the pairing stays informational.
type Advisory struct {
	When    ID
	On      ID
	Message string
}

var advisories = []Advisory{
	{When: NoSugar, On: NoSnacks, Message: "Great combo with No Sugar! 💪"},
}

func Advisories() []Advisory {
	out := make([]Advisory, len(advisories))
	copy(out, advisories)
	return out
}
