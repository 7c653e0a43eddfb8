package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusPrivate   ContentStatus = "private"
	StatusArchived  ContentStatus = "archived"
	StatusDeleted   ContentStatus = "deleted"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

type BlogCategory string

const (
	BlogTech    BlogCategory = "TECH"
	BlogLife    BlogCategory = "LIFE"
	BlogStudy   BlogCategory = "STUDY"
	BlogSummary BlogCategory = "SUMMARY"
	BlogDiary   BlogCategory = "DIARY"
	BlogEssay   BlogCategory = "ESSAY"
)

type PhotoCategory string

const (
	PhotoSelfie    PhotoCategory = "SELFIE"
	PhotoDaily     PhotoCategory = "DAILY"
	PhotoPortrait  PhotoCategory = "PORTRAIT"
	PhotoLandscape PhotoCategory = "LANDSCAPE"
	PhotoArt       PhotoCategory = "ART"
)

// StringList 在 API 层是 []string，落库是逗号拼接的 TEXT。
// 序列化只发生在这一处，业务代码不再关心存储格式。
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("StringList: unsupported column type %T", src)
	}
	if strings.TrimSpace(s) == "" {
		*l = nil
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}

// GormDataType TEXT 列
func (StringList) GormDataType() string { return "text" }
