package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for _, c := range []struct {
			addr  string
			local bool
		}{
			{"127.0.0.1:10000", true},
			{"[::1]:80", true},
			{"10.0.0.8", true},
			{"192.168.1.1:443", true},
			{"203.0.113.7:443", false},
			{"8.8.8.8", false},
		} {
			yes, err := isLocalAddr(c.addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != c.local {
				t.Fatalf("%s: got %v", c.addr, yes)
			}
		}
	})
}

func TestProxyDisabledForTest(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}

func TestProxyURLScheme(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		dscope.Provide(ProxyAddr("socks://127.0.0.1:1080")),
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u.Scheme)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}
