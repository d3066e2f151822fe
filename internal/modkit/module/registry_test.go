package module

import "testing"

type chatPorts struct{ Limit int }

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("chat", chatPorts{Limit: 10})

	got, ok := PortsAs[chatPorts]("chat")
	if !ok || got.Limit != 10 {
		t.Fatalf("PortsAs(chat) = %v %v, want {10} true", got, ok)
	}
	if _, ok := PortsAs[string]("chat"); ok {
		t.Fatal("PortsAs with the wrong type should report false")
	}
	if _, ok := PortsAs[chatPorts]("voice"); ok {
		t.Fatal("PortsAs for an unregistered name should report false")
	}

	Register("chat", chatPorts{Limit: 20})
	if got, _ := PortsAs[chatPorts]("chat"); got.Limit != 20 {
		t.Fatalf("re-register kept %d, want 20", got.Limit)
	}

	Reset()
	if _, ok := PortsAs[chatPorts]("chat"); ok {
		t.Fatal("Reset left entries behind")
	}
}
