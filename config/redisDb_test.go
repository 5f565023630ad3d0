package config

import "testing"

func TestRedisObjectHelpersWithoutConnection(t *testing.T) {
	if GetRedisDB() != nil {
		t.Skip("redis connected; nil-client behavior not testable")
	}

	found, err := GetRedisObject("dashboard:missing", &struct{}{})
	if err != nil {
		t.Fatalf("GetRedisObject without a client: %v", err)
	}
	if found {
		t.Errorf("GetRedisObject reported a hit without a client")
	}

	if err := SetRedisObject("dashboard:missing", map[string]string{"a": "b"}, 0); err != nil {
		t.Errorf("SetRedisObject without a client: %v", err)
	}

	if GetRedisLock() != nil {
		t.Errorf("lock client set before ConnectRedisWithRetry")
	}
}
