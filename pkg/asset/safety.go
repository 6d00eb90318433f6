package asset

import (
	"context"
	"fmt"
	"net"
	"net/url"
)

type lookupFunc func(ctx context.Context, host string) ([]net.IP, error)

func defaultLookup(ctx context.Context, host string) ([]net.IP, error) {
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

// IsSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func IsSafeURL(ctx context.Context, rawURL string) (bool, error) {
	if err := checkURL(ctx, rawURL, defaultLookup); err != nil {
		return false, err
	}
	return true, nil
}

func checkURL(ctx context.Context, rawURL string, lookup lookupFunc) error {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}
	host := parsedURL.Hostname()
	if host == "" {
		return fmt.Errorf("ホスト名がありません: %s", rawURL)
	}

	ips, err := lookup(ctx, host)
	if err != nil {
		return fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
	}

	for _, ip := range ips {
		if isRestricted(ip) {
			return fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}
	return nil
}

func isRestricted(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast()
}
