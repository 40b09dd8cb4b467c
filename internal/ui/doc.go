// Package ui renders the feedback platform in the terminal with Bubble Tea.
//
// Core abstractions:
//   - View: one full-screen variant (landing, forms, dashboard, about) with its own Init/Update/View
//   - AppModel: the root model; turns view messages into controller actions and swaps views
//   - KeybindRegistry: global keys filtered by active view and whether a text field has focus
//   - OverlayStack: blocking modals (the empty-feedback alert)
//   - FocusManager: tab order inside a view
//
// Views never touch controller state. They emit message values (SelectRoleMsg,
// SubmitFeedbackMsg, LoginMsg, NavigateMsg) and AppModel dispatches them.
package ui
