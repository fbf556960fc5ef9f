package session

import "testing"

func TestSession_SetIdentity_ReplacesAllFields(t *testing.T) {
	s := New()

	s.SetIdentity("ana@example.com", "Ana", "cust-1")
	s.SetIdentity("luis@example.com", "Luis", "cust-2")

	id := s.Identity()
	if id.Email != "luis@example.com" || id.Name != "Luis" || id.CustomerID != "cust-2" {
		t.Fatalf("expected identity fully replaced, got %+v", id)
	}
	if !id.LoggedIn() {
		t.Fatalf("expected LoggedIn true with customer id present")
	}
}

func TestSession_Clear_ResetsEverything(t *testing.T) {
	s := New()
	s.SetIdentity("ana@example.com", "Ana", "cust-1")

	s.Clear()

	id := s.Identity()
	if id.Email != "" || id.Name != "" || id.CustomerID != "" {
		t.Fatalf("expected empty identity after Clear, got %+v", id)
	}
	if id.LoggedIn() {
		t.Fatalf("expected LoggedIn false after Clear")
	}
}

func TestStore_IssueGetRevoke(t *testing.T) {
	st := NewStore()

	token, s := st.Issue("ana@example.com", "Ana", "cust-1")
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, ok := st.Get(token)
	if !ok || got != s {
		t.Fatalf("expected to retrieve the issued session")
	}

	st.Revoke(token)

	if _, ok := st.Get(token); ok {
		t.Fatalf("expected token invalid after Revoke")
	}
	if s.Identity().LoggedIn() {
		t.Fatalf("expected session cleared after Revoke")
	}
}

func TestStore_RevokeByCustomer(t *testing.T) {
	st := NewStore()

	t1, _ := st.Issue("ana@example.com", "Ana", "cust-1")
	t2, _ := st.Issue("ana@example.com", "Ana", "cust-1")
	t3, _ := st.Issue("luis@example.com", "Luis", "cust-2")

	st.RevokeByCustomer("cust-1")

	if _, ok := st.Get(t1); ok {
		t.Fatalf("expected first session revoked")
	}
	if _, ok := st.Get(t2); ok {
		t.Fatalf("expected second session revoked")
	}
	if _, ok := st.Get(t3); !ok {
		t.Fatalf("expected other customer's session untouched")
	}
}
