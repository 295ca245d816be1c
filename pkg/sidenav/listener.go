package sidenav

// Listener is told when the drawer finishes settling into a new state.
type Listener interface {
	OnShowNavigationView(l *Layout)
	OnShowContentView(l *Layout)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	ShowNavigation func(l *Layout)
	ShowContent    func(l *Layout)
}

// OnShowNavigationView calls ShowNavigation.
func (f ListenerFuncs) OnShowNavigationView(l *Layout) {
	if f.ShowNavigation != nil {
		f.ShowNavigation(l)
	}
}

// OnShowContentView calls ShowContent.
func (f ListenerFuncs) OnShowContentView(l *Layout) {
	if f.ShowContent != nil {
		f.ShowContent(l)
	}
}
