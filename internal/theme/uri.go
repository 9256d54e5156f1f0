package theme

import (
	"net/url"
	"path"
	"strings"
)

// JoinURI resolves rel against the directory URI base. Absolute URIs in rel
// are returned unchanged.
func JoinURI(base, rel string) string {
	if isAbsoluteURI(rel) {
		return rel
	}
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(rel, "./")
	}
	if strings.HasPrefix(rel, "/") {
		u.Path = path.Clean(rel)
	} else {
		u.Path = path.Join("/", u.Path, rel)
	}
	return u.String()
}

// SiblingURI resolves rel against the directory holding the resource at uri.
func SiblingURI(uri, rel string) string {
	if isAbsoluteURI(rel) {
		return rel
	}
	u, err := url.Parse(uri)
	if err != nil {
		return JoinURI(uri, rel)
	}
	u.Path = path.Dir(u.Path)
	return JoinURI(u.String(), rel)
}

func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && len(u.Scheme) > 1
}
