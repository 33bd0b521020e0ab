package report

import "os"

// fontSet — пути к ttf-шрифтам для PDF. Пустые пути означают откат на
// встроенный шрифт gofpdf с перекодировкой cp1251.
type fontSet struct {
	regular string
	bold    string
}

// Кандидаты по платформам; первый существующий на диске выигрывает.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

var boldFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// resolveFonts проходит список кандидатов: сначала явные пути из
// конфигурации, затем системные. Жирный вариант при отсутствии своего файла
// откатывается на обычный. Результат кэшируется в сервисе отчетов при его
// создании, поэтому с диска пути читаются один раз на сервис.
func resolveFonts(override, boldOverride string) fontSet {
	fonts := fontSet{
		regular: firstExisting(append([]string{override}, fontCandidates...)),
		bold:    firstExisting(append([]string{boldOverride}, boldFontCandidates...)),
	}
	if fonts.bold == "" {
		fonts.bold = fonts.regular
	}
	return fonts
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
