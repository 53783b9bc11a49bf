// internal/transform/labels.go
package transform

// Section titles of the display document, in emission order.
const (
	SectionMain       = "Основные"
	SectionRegions    = "Регионы"
	SectionSite       = "Сайт"
	SectionProduct    = "Продукт"
	SectionModifiers  = "Модификаторы"
	SectionParameters = "Параметры"
	SectionTariffs    = "Тарифы"
)

// Top-level keys of the catalog document.
const (
	KeyRegions          = "Regions"
	KeySiteURLTemplate  = "MTSSiteUrlTemplate"
	KeyMarketingProduct = "MarketingProduct"
	KeyModifiers        = "Modifiers"
	KeyParameters       = "Parameters"
	KeyTariffsOnService = "TariffsOnService"
)

// Field labels.
const (
	LabelUpdateDate      = "Дата обновления"
	LabelType            = "Тип"
	LabelGlobalCode      = "GlobalCode_Value"
	LabelKladr           = "КЛАДР"
	LabelTitle           = "Заголовок"
	LabelTemplate        = "Шаблон"
	LabelDescription     = "Описание"
	LabelFullDescription = "Полное описание"
	LabelServiceType     = "Тип услуги"
	LabelZone            = "Зона"
	LabelLink            = "Ссылка"
	LabelSegment         = "Сегмент"
	LabelCategories      = "Категории"
	LabelCommunication   = "Тип коммуникации"
	LabelGroups          = "Группы"
	LabelQuotaType       = "Тип квоты"
	LabelParent          = "Родитель"
	LabelModifiers       = "Модификаторы"
	LabelParameters      = "Параметры"
	LabelBaseParameter   = "Базовый параметр"
	LabelGroup           = "Группа"
	LabelValue           = "Значение"
	LabelMainParameter   = "Основной параметр"
	LabelPeriodicity     = "Переодичность оплаты"
	LabelCurrency        = "Валюта"
	LabelCurrencyDisplay = "Валюта для вывода"
	LabelName            = "Название"
)

// Region types and their display names.
const (
	RegionTypeRegion = "Region"
	RegionTypeCity   = "City"

	RegionDisplayRegion = "Регион"
	RegionDisplayCity   = "Город"
)
