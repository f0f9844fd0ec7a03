package input

// InitSurface binds the first element matching selector and returns its
// Surface, or nil when nothing matches. Only that first element is bound.
// An empty strokeColor leaves the surface on render.DefaultColor.
//
// No touchend listener is registered, so a touch gesture stays active until
// a mouseup or the next touchstart.
func InitSurface(doc *Document, selector, strokeColor string) *Surface {
	found := doc.QuerySelectorAll(selector)
	if len(found) == 0 {
		return nil
	}
	elem := found[0]
	s := newSurface(elem, strokeColor)

	elem.AddEventListener(MouseDown, func(ev *Event) { s.OnGestureStart(ev) })
	elem.AddEventListener(MouseUp, func(ev *Event) { s.OnGestureEnd(ev) })
	elem.AddEventListener(MouseMove, func(ev *Event) { s.OnGestureMove(ev) })
	elem.AddEventListener(TouchStart, func(ev *Event) { s.OnGestureStart(ev) })
	elem.AddEventListener(TouchMove, func(ev *Event) { s.OnGestureMove(ev) })
	return s
}
