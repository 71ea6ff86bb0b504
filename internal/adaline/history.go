package adaline

// PushInput records v as the input of a forward pass.
func (u *Unit) PushInput(v []float64) {
	u.inputs.Push(append([]float64(nil), v...))
}

// PopInput removes and returns the most recent input. ok is false if the
// input history is empty.
func (u *Unit) PopInput() (v []float64, ok bool) {
	return u.inputs.Pop()
}

// ClearInputs empties the input history.
func (u *Unit) ClearInputs() {
	u.inputs.Clear()
}

// InputDepth returns the number of recorded inputs.
func (u *Unit) InputDepth() int {
	return u.inputs.Len()
}

// PushDerivative records v as the transfer derivative of a forward pass.
func (u *Unit) PushDerivative(v []float64) {
	u.derivatives.Push(append([]float64(nil), v...))
}

// PopDerivative removes and returns the most recent derivative. ok is false
// if the derivative history is empty.
func (u *Unit) PopDerivative() (v []float64, ok bool) {
	return u.derivatives.Pop()
}

// ClearDerivatives empties the derivative history.
func (u *Unit) ClearDerivatives() {
	u.derivatives.Clear()
}

// DerivativeDepth returns the number of recorded derivatives.
func (u *Unit) DerivativeDepth() int {
	return u.derivatives.Len()
}

// Reset empties both histories, e.g. between independent training episodes.
func (u *Unit) Reset() {
	u.inputs.Clear()
	u.derivatives.Clear()
}
