package langid

import perr "careerassist/internal/platform/errors"

var localized = map[string]map[perr.ErrorCode]string{
	"hi": {
		perr.ErrorCodePermissionDenied:        "कृपया वॉइस रिकॉर्डिंग के लिए अपनी डिवाइस सेटिंग्स में माइक्रोफोन की अनुमति दें।",
		perr.ErrorCodeRecordingFailed:         "ऑडियो रिकॉर्ड नहीं हो सका। कृपया अपना माइक्रोफोन जांचें और फिर से कोशिश करें।",
		perr.ErrorCodeTranscriptionFailed:     "आवाज को टेक्स्ट में बदलने में असफल। कृपया फिर से कोशिश करें।",
		perr.ErrorCodeChatFailed:              "AI प्रतिक्रिया प्राप्त करने में असफल। कृपया फिर से कोशिश करें।",
		perr.ErrorCodeNoSpeechDetected:        "रिकॉर्डिंग में कोई आवाज नहीं मिली। कृपया स्पष्ट रूप से बोलें और फिर से कोशिश करें।",
		perr.ErrorCodeNetwork:                 "नेटवर्क कनेक्शन असफल। कृपया अपना इंटरनेट कनेक्शन जांचें और फिर से कोशिश करें।",
		perr.ErrorCodeInvalidAudio:            "अमान्य ऑडियो फाइल। कृपया फिर से रिकॉर्ड करें।",
		perr.ErrorCodeAPIKeyMissing:           "API कॉन्फ़िगरेशन गुम है। कृपया सहायता से संपर्क करें।",
		perr.ErrorCodeLanguageDetectionFailed: "भाषा की पहचान में असफल। कृपया फिर से कोशिश करें।",
	},
	"ta": {
		perr.ErrorCodePermissionDenied:        "குரல் பதிவுக்கு உங்கள் சாதன அமைப்புகளில் மைக்ரோஃபோன் அனுமதியை வழங்கவும்.",
		perr.ErrorCodeRecordingFailed:         "ஆடியோ பதிவு செய்ய முடியவில்லை. உங்கள் மைக்ரோஃபோனைச் சரிபார்த்து மீண்டும் முயற்சிக்கவும்.",
		perr.ErrorCodeTranscriptionFailed:     "பேச்சை உரையாக மாற்றுவதில் தோல்வி. மீண்டும் முயற்சிக்கவும்.",
		perr.ErrorCodeChatFailed:              "AI பதிலைப் பெறுவதில் தோல்வி. மீண்டும் முயற்சிக்கவும்.",
		perr.ErrorCodeNoSpeechDetected:        "பதிவில் பேச்சு கண்டறியப்படவில்லை. தெளிவாகப் பேசி மீண்டும் முயற்சிக்கவும்.",
		perr.ErrorCodeNetwork:                 "நெட்வொர்க் இணைப்பு தோல்வி. உங்கள் இணைய இணைப்பைச் சரிபார்த்து மீண்டும் முயற்சிக்கவும்.",
		perr.ErrorCodeInvalidAudio:            "தவறான ஆடியோ கோப்பு. மீண்டும் பதிவு செய்யவும்.",
		perr.ErrorCodeAPIKeyMissing:           "API கட்டமைப்பு காணவில்லை. ஆதரவைத் தொடர்பு கொள்ளவும்.",
		perr.ErrorCodeLanguageDetectionFailed: "மொழி அடையாளம் காணுவதில் தோல்வி. மீண்டும் முயற்சிக்கவும்.",
	},
	"bn": {
		perr.ErrorCodePermissionDenied:        "ভয়েস রেকর্ডিং এর জন্য আপনার ডিভাইস সেটিংসে মাইক্রোফোন অনুমতি দিন।",
		perr.ErrorCodeRecordingFailed:         "অডিও রেকর্ড করতে পারছি না। আপনার মাইক্রোফোন চেক করুন এবং আবার চেষ্টা করুন।",
		perr.ErrorCodeTranscriptionFailed:     "কথাকে টেক্সটে রূপান্তর করতে ব্যর্থ। আবার চেষ্টা করুন।",
		perr.ErrorCodeChatFailed:              "AI প্রতিক্রিয়া পেতে ব্যর্থ। আবার চেষ্টা করুন।",
		perr.ErrorCodeNoSpeechDetected:        "রেকর্ডিংয়ে কোনো কথা পাওয়া যায়নি। স্পষ্ট করে বলুন এবং আবার চেষ্টা করুন।",
		perr.ErrorCodeNetwork:                 "নেটওয়ার্ক সংযোগ ব্যর্থ। আপনার ইন্টারনেট সংযোগ চেক করুন এবং আবার চেষ্টা করুন।",
		perr.ErrorCodeInvalidAudio:            "অবৈধ অডিও ফাইল। আবার রেকর্ড করুন।",
		perr.ErrorCodeAPIKeyMissing:           "API কনফিগারেশন অনুপস্থিত। সাপোর্টের সাথে যোগাযোগ করুন।",
		perr.ErrorCodeLanguageDetectionFailed: "ভাষা শনাক্তকরণে ব্যর্থ। আবার চেষ্টা করুন।",
	},
}

var english = map[perr.ErrorCode]string{
	perr.ErrorCodePermissionDenied:        "Please allow microphone access in your device settings to use voice recording.",
	perr.ErrorCodeRecordingFailed:         "Unable to record audio. Please check your microphone and try again.",
	perr.ErrorCodeTranscriptionFailed:     "Failed to convert speech to text. Please try again.",
	perr.ErrorCodeChatFailed:              "Failed to get AI response. Please try again.",
	perr.ErrorCodeNoSpeechDetected:        "No speech was detected in the recording. Please speak clearly and try again.",
	perr.ErrorCodeNetwork:                 "Network connection failed. Please check your internet connection and try again.",
	perr.ErrorCodeInvalidAudio:            "Invalid audio file. Please record again.",
	perr.ErrorCodeAPIKeyMissing:           "API configuration missing. Please contact support.",
	perr.ErrorCodeLanguageDetectionFailed: "Language detection failed. Please try again.",
}

const unexpectedMessage = "An unexpected error occurred. Please try again."

// ErrorMessage returns a user facing message for a failure code in the given language
// unknown languages fall back to English, unknown codes to a generic message
func ErrorMessage(lang string, code perr.ErrorCode) string {
	if m, ok := localized[lang][code]; ok {
		return m
	}
	if m, ok := english[code]; ok {
		return m
	}
	return unexpectedMessage
}

// UserMessage maps any error to a user facing message in lang
// the outermost code with a known message wins
func UserMessage(lang string, err error) string {
	for _, c := range perr.Codes(err) {
		if HasMessage(c) {
			return ErrorMessage(lang, c)
		}
	}
	return unexpectedMessage
}

// HasMessage reports whether code has a dedicated user facing message
func HasMessage(code perr.ErrorCode) bool {
	_, ok := english[code]
	return ok
}
