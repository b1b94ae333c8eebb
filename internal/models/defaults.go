// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultSettings returns the settings a fresh backend starts with. Each
// call returns a new value that the caller may modify.
func DefaultSettings() SiteSettings {
	active := make(map[string]bool, len(Platforms))
	for _, p := range Platforms {
		active[p] = true
	}

	return SiteSettings{
		LogoURL:            "assets/logo.svg",
		HeroBgURL:          "assets/background.svg",
		SiteBgColor:        "#050505",
		PrimaryColor:       "#10b981",
		SecondaryColor:     "#b45309",
		SiteTitle:          "عصر الهامور",
		AndroidURL:         "#",
		IOSURL:             "#",
		IsMaintenanceMode:  false,
		MaintenanceMessage: "الأسطول في مهمة صيانة سريعة، سنعود قريباً!",
		ShowcaseImages: ShowcaseImages{
			Map:       "assets/map.png",
			Rank:      "assets/rank.png",
			Tasks:     "assets/tasks.png",
			Chat:      "assets/chat.png",
			Store:     "assets/store.png",
			Warehouse: "assets/warehouse.png",
		},
		Translations: Translations{
			LangEN: defaultEnglish(),
			LangAR: defaultArabic(),
		},
		SocialLinks: SocialLinks{
			ShowSocials: true,
			ActiveLinks: active,
		},
	}
}

func defaultEnglish() map[string]string {
	return map[string]string{
		"navHome":                "Home",
		"navNews":                "News",
		"navShowcase":            "Features",
		"navDownloads":           "Downloads",
		"navSupport":             "Support",
		"heroHeadline":           "Rule the Seas",
		"heroSubheadline":        "Your adventure starts here.",
		"heroBtnDownload":        "Get App",
		"heroBtnLogs":            "Logs",
		"newsTitle":              "News",
		"newsSub":                "Latest",
		"newsBtnRead":            "Read",
		"showcaseTitle":          "Showcase",
		"showcaseSub":            "Game",
		"featMap":                "Map",
		"featMapDesc":            "Desc",
		"featRank":               "Rank",
		"featRankDesc":           "Desc",
		"featTasks":              "Tasks",
		"featTasksDesc":          "Desc",
		"featChat":               "Chat",
		"featChatDesc":           "Desc",
		"featStore":              "Store",
		"featStoreDesc":          "Desc",
		"featWarehouse":          "Safe",
		"featWarehouseDesc":      "Desc",
		"downloadTitle":          "Download",
		"downloadSub":            "Now",
		"downloadQuickDeploy":    "QR",
		"downloadQuickDeploySub": "Scan",
		"supportTitle":           "Support",
		"supportSub":             "Contact",
		"supportBtnSend":         "Send",
		"footerDesc":             "Asr Al Hamour",
		"storeAppStore":          "App Store",
		"storeGooglePlay":        "Google Play",
		"storeBadge":             "Official",
	}
}

func defaultArabic() map[string]string {
	return map[string]string{
		"navHome":                "الرئيسية",
		"navNews":                "الأخبار",
		"navShowcase":            "المميزات",
		"navDownloads":           "التحميل",
		"navSupport":             "الدعم",
		"heroHeadline":           "سيطر على البحار",
		"heroSubheadline":        "مغامرتك تبدأ من هنا.",
		"heroBtnDownload":        "تحميل",
		"heroBtnLogs":            "السجلات",
		"newsTitle":              "الأخبار",
		"newsSub":                "الأحدث",
		"newsBtnRead":            "اقرأ",
		"showcaseTitle":          "العرض",
		"showcaseSub":            "اللعبة",
		"featMap":                "خريطة",
		"featMapDesc":            "وصف",
		"featRank":               "ترتيب",
		"featRankDesc":           "وصف",
		"featTasks":              "مهام",
		"featTasksDesc":          "وصف",
		"featChat":               "دردشة",
		"featChatDesc":           "وصف",
		"featStore":              "متجر",
		"featStoreDesc":          "وصف",
		"featWarehouse":          "خزنة",
		"featWarehouseDesc":      "وصف",
		"downloadTitle":          "تحميل",
		"downloadSub":            "الآن",
		"downloadQuickDeploy":    "QR",
		"downloadQuickDeploySub": "امسح",
		"supportTitle":           "الدعم",
		"supportSub":             "اتصل",
		"supportBtnSend":         "إرسال",
		"footerDesc":             "عصر الهامور",
		"storeAppStore":          "App Store",
		"storeGooglePlay":        "Google Play",
		"storeBadge":             "رسمي",
	}
}
