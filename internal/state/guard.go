package state

import "encoding/json"

// Type guards over decoded JSON. A blob loaded from either backend must pass
// the guard before it is trusted; callers substitute a fully-specified
// default on failure and never merge a partially valid blob.

// IsMission reports whether v structurally matches Mission: required fields
// with the right primitive kinds, optional fields absent or correctly typed.
func IsMission(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := obj["id"].(string); !ok {
		return false
	}
	if _, ok := obj["title"].(string); !ok {
		return false
	}
	if _, ok := obj["tag"].(string); !ok {
		return false
	}
	if _, ok := obj["duration"].(float64); !ok {
		return false
	}
	if why, present := obj["why"]; present {
		if _, ok := why.(string); !ok {
			return false
		}
	}
	if completed, present := obj["completed"]; present {
		if _, ok := completed.(bool); !ok {
			return false
		}
	}
	if completedAt, present := obj["completedAt"]; present {
		if _, ok := completedAt.(string); !ok {
			return false
		}
	}
	return true
}

// IsAppState reports whether v structurally matches AppState. weekStartDate
// may be absent: the earlier persisted shape predates it, and the migration
// in DecodeAppState defaults it.
func IsAppState(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	missions, ok := obj["missions"].([]any)
	if !ok {
		return false
	}
	for _, m := range missions {
		if !IsMission(m) {
			return false
		}
	}
	if _, ok := obj["xp"].(float64); !ok {
		return false
	}
	if _, ok := obj["streak"].(float64); !ok {
		return false
	}
	days, ok := obj["last7Days"].([]any)
	if !ok || len(days) != 7 {
		return false
	}
	for _, d := range days {
		if _, ok := d.(float64); !ok {
			return false
		}
	}
	view, ok := obj["currentView"].(string)
	if !ok || !validView(View(view)) {
		return false
	}
	if _, ok := obj["lastResetDate"].(string); !ok {
		return false
	}
	if ws, present := obj["weekStartDate"]; present {
		if _, ok := ws.(string); !ok {
			return false
		}
	}
	return true
}

// IsUIState reports whether v structurally matches UIState.
func IsUIState(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	page, ok := obj["currentPage"].(string)
	if !ok || !validPage(Page(page)) {
		return false
	}
	if !isPanelToggle(obj["momentumBar"]) || !isPanelToggle(obj["weeklyBox"]) {
		return false
	}
	if _, ok := obj["focusWindow"].(float64); !ok {
		return false
	}
	return true
}

func isPanelToggle(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj["show"].(bool)
	return ok
}

func validView(v View) bool {
	switch v {
	case ViewInput, ViewPlan, ViewFocus, ViewDashboard:
		return true
	}
	return false
}

func validPage(p Page) bool {
	switch p {
	case PagePlan, PageFocus, PageDashboard:
		return true
	}
	return false
}

// DecodeAppState validates raw against the AppState guard and decodes it,
// normalizing serialized completedAt strings into time values. A blob from
// the earlier schema without weekStartDate decodes with the field empty,
// which forces a weekly reset on the next reconcile.
func DecodeAppState(raw []byte) (AppState, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return AppState{}, false
	}
	if !IsAppState(v) {
		return AppState{}, false
	}
	var st AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		return AppState{}, false
	}
	if st.Missions == nil {
		st.Missions = []Mission{}
	}
	return st, true
}

// DecodeUIState validates raw against the UIState guard and decodes it.
func DecodeUIState(raw []byte) (UIState, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return UIState{}, false
	}
	if !IsUIState(v) {
		return UIState{}, false
	}
	var ui UIState
	if err := json.Unmarshal(raw, &ui); err != nil {
		return UIState{}, false
	}
	return ui, true
}
