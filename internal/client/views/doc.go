// Package views holds the per-screen state of the Leo client.
//
// Each view owns its state explicitly (nothing is global) and exposes a
// copy through State. A view runs one action at a time: a second action
// started while one is outstanding fails with ErrBusy. Actions take a
// context; when it is canceled before the backend answers, the result is
// dropped and the state is left as it was.
//
// Failures are kept as inline messages (see Message) so the screen stays
// usable and the user can retry.
package views
