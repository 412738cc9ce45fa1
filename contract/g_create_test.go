package contract

import (
	"testing"
)

func TestCreateGame_AssignsSequentialIds(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")

	for want := uint64(0); want < 3; want++ {
		payload := "1|100|0"
		ret := CreateGame(&payload, chain)
		if ret == nil || *ret != UInt64ToString(want) {
			t.Fatalf("expected id %d, got %v", want, ret)
		}
	}

	total := GetTotalGames(nil, chain)
	if *total != "3" {
		t.Errorf("expected total 3, got %s", *total)
	}
}

func TestCreateGame_InvalidRange(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")

	payload := "100|1|0"
	mustAbort(t, chain, ErrInvalidParams, "min greater than max", func() {
		CreateGame(&payload, chain)
	})

	if total := GetTotalGames(nil, chain); *total != "0" {
		t.Errorf("failed creation must not allocate an id, total %s", *total)
	}
}

func TestCreateGame_PersistsActiveRecord(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")
	chain.SetBlock(42, "block41")

	payload := "5|25|1000|hbd"
	ret := CreateGame(&payload, chain)

	g, found := loadGame(chain, 0)
	if !found {
		t.Fatal("created game not found")
	}
	if g.Creator != "hive:alice" || g.MinNumber != 5 || g.MaxNumber != 25 ||
		g.EntryFee != 1000 || g.Asset.String() != "hbd" {
		t.Errorf("unexpected game record: %+v", g)
	}
	if g.Status != StatusActive || g.PrizePool != 0 || g.GuessCount != 0 {
		t.Errorf("fresh game must be Active with zero pool and count: %+v", g)
	}
	if _, ok := g.Winner(); ok {
		t.Error("fresh game must have no winner")
	}
	if g.CreatedAt != 42 {
		t.Errorf("expected createdAt 42, got %d", g.CreatedAt)
	}
	if !eventLogged(chain, "gameCreated", `"id":"`+*ret+`"`) {
		t.Error("expected gameCreated event")
	}
}

func TestCreateGame_SecretWithinRange(t *testing.T) {
	ranges := []struct{ min, max uint64 }{
		{0, 0}, {1, 100}, {42, 42}, {7, 8}, {0, 1 << 40},
	}
	for height := uint64(1); height <= 50; height++ {
		for _, r := range ranges {
			chain := NewFakeSDK("hive:alice", "tx1")
			chain.SetBlock(height, "block"+UInt64ToString(height-1))
			payload := UInt64ToString(r.min) + "|" + UInt64ToString(r.max) + "|0"
			CreateGame(&payload, chain)

			g, _ := loadGame(chain, 0)
			if g.SecretNumber < r.min || g.SecretNumber > r.max {
				t.Fatalf("secret %d outside [%d, %d] at height %d",
					g.SecretNumber, r.min, r.max, height)
			}
		}
	}
}

func TestCreateGame_SingleNumberRangeForcesSecret(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")
	payload := "42|42|0"
	CreateGame(&payload, chain)

	g, _ := loadGame(chain, 0)
	if g.SecretNumber != 42 {
		t.Errorf("width-1 range must pin the secret, got %d", g.SecretNumber)
	}
}

func TestCreateGame_InvalidAsset(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")
	payload := "1|100|0|doge"
	mustAbort(t, chain, ErrInvalidParams, "invalid asset", func() {
		CreateGame(&payload, chain)
	})
}

func TestCreateGame_MalformedPayload(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")
	payload := "1|x|0"
	mustAbort(t, chain, ErrInvalidParams, "invalid number", func() {
		CreateGame(&payload, chain)
	})
}

func TestCreateGame_OverflowingNumber(t *testing.T) {
	chain := NewFakeSDK("hive:alice", "tx1")
	// 2^64 must be rejected, not wrapped to 0
	payload := "1|18446744073709551616|0"
	mustAbort(t, chain, ErrInvalidParams, "invalid number", func() {
		CreateGame(&payload, chain)
	})

	// 2^64-1 is still a valid field value
	chain = NewFakeSDK("hive:alice", "tx1")
	payload = "1|18446744073709551615|0"
	if ret := CreateGame(&payload, chain); ret == nil || *ret != "0" {
		t.Errorf("max uint64 must parse, got %v", ret)
	}
}
