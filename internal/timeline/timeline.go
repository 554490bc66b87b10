// Package timeline holds the static health-benefit timeline: the
// physiological improvements the body goes through after quitting, keyed by
// minutes since the quit instant. The list is strictly ascending by time.
package timeline

// Entry is one health-benefit threshold.
type Entry struct {
	ID            string `json:"id"`
	TimeInMinutes int    `json:"time_in_minutes"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

var entries = []Entry{
	{ID: "hb-20m", TimeInMinutes: 20, Title: "২০ মিনিট", Description: "হৃদস্পন্দন ও রক্তচাপ স্বাভাবিক হতে শুরু করে"},
	{ID: "hb-8h", TimeInMinutes: 8 * 60, Title: "৮ ঘণ্টা", Description: "রক্তে নিকোটিন ও কার্বন মনোক্সাইডের মাত্রা অর্ধেকে নেমে আসে"},
	{ID: "hb-12h", TimeInMinutes: 12 * 60, Title: "১২ ঘণ্টা", Description: "রক্তে কার্বন মনোক্সাইডের মাত্রা স্বাভাবিক হয়"},
	{ID: "hb-24h", TimeInMinutes: 24 * 60, Title: "২৪ ঘণ্টা", Description: "হার্ট অ্যাটাকের ঝুঁকি কমতে শুরু করে"},
	{ID: "hb-48h", TimeInMinutes: 48 * 60, Title: "৪৮ ঘণ্টা", Description: "স্বাদ ও ঘ্রাণের অনুভূতি ফিরে আসতে শুরু করে"},
	{ID: "hb-72h", TimeInMinutes: 72 * 60, Title: "৭২ ঘণ্টা", Description: "শ্বাসনালী শিথিল হয়, শ্বাস নেওয়া সহজ হয়"},
	{ID: "hb-1w", TimeInMinutes: 7 * 24 * 60, Title: "১ সপ্তাহ", Description: "নিকোটিন শরীর থেকে সম্পূর্ণ বেরিয়ে যায়"},
	{ID: "hb-2w", TimeInMinutes: 14 * 24 * 60, Title: "২ সপ্তাহ", Description: "রক্ত সঞ্চালন উন্নত হয়, হাঁটাচলা সহজ হয়"},
	{ID: "hb-1m", TimeInMinutes: 30 * 24 * 60, Title: "১ মাস", Description: "ফুসফুসের কার্যক্ষমতা বাড়ে, কাশি ও শ্বাসকষ্ট কমে"},
	{ID: "hb-3m", TimeInMinutes: 90 * 24 * 60, Title: "৩ মাস", Description: "ফুসফুসের কার্যক্ষমতা ৩০% পর্যন্ত বৃদ্ধি পায়"},
	{ID: "hb-6m", TimeInMinutes: 180 * 24 * 60, Title: "৬ মাস", Description: "কফ ও শ্লেষ্মা উল্লেখযোগ্যভাবে কমে আসে"},
	{ID: "hb-9m", TimeInMinutes: 270 * 24 * 60, Title: "৯ মাস", Description: "ফুসফুসের সিলিয়া পুনর্গঠিত হয়, সংক্রমণের ঝুঁকি কমে"},
	{ID: "hb-1y", TimeInMinutes: 365 * 24 * 60, Title: "১ বছর", Description: "হৃদরোগের ঝুঁকি ধূমপায়ীর তুলনায় অর্ধেকে নেমে আসে"},
	{ID: "hb-5y", TimeInMinutes: 5 * 365 * 24 * 60, Title: "৫ বছর", Description: "স্ট্রোকের ঝুঁকি অধূমপায়ীর সমান হয়"},
	{ID: "hb-10y", TimeInMinutes: 10 * 365 * 24 * 60, Title: "১০ বছর", Description: "ফুসফুস ক্যান্সারে মৃত্যুর ঝুঁকি অর্ধেকে নেমে আসে"},
	{ID: "hb-15y", TimeInMinutes: 15 * 365 * 24 * 60, Title: "১৫ বছর", Description: "হৃদরোগের ঝুঁকি অধূমপায়ীর সমান হয়"},
}

// Entries returns a copy of the timeline so callers cannot mutate the static
// data.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len reports the number of timeline entries.
func Len() int {
	return len(entries)
}
