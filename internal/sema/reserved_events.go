package sema

import "strings"

// reservedEventNames lists the platform event names a custom event must
// not shadow: dispatching a custom event with one of these names makes
// `addEventListener` handlers fire for both the native and the custom
// event. The set is lowercase; matching is case-insensitive.
var reservedEventNames = [...]string{
	// Document and window lifecycle.
	"abort", "afterprint", "beforeprint", "beforeunload", "domcontentloaded",
	"hashchange", "languagechange", "load", "beforeinstallprompt",
	"appinstalled", "pagehide", "pageshow", "popstate", "readystatechange",
	"unload", "visibilitychange", "freeze", "beforematch",

	// Focus and selection.
	"blur", "focus", "focusin", "focusout", "select", "selectionchange",
	"selectstart",

	// Keyboard and composition.
	"keydown", "keypress", "keyup", "compositionend", "compositionstart",
	"compositionupdate",

	// Mouse, wheel and context menu.
	"auxclick", "click", "contextmenu", "dblclick", "mousedown", "mouseenter",
	"mouseleave", "mousemove", "mouseout", "mouseover", "mouseup",
	"mousewheel", "wheel",

	// Pointer and touch.
	"gotpointercapture", "lostpointercapture", "pointercancel", "pointerdown",
	"pointerenter", "pointerleave", "pointerlockchange", "pointerlockerror",
	"pointermove", "pointerout", "pointerover", "pointerrawupdate",
	"pointerup", "touchcancel", "touchend", "touchenter", "touchleave",
	"touchmove", "touchstart",

	// Drag and drop.
	"drag", "dragend", "dragenter", "dragexit", "dragleave", "dragover",
	"dragstart", "drop",

	// Clipboard.
	"beforecopy", "beforecut", "beforepaste", "copy", "cut", "paste",

	// Forms and editing.
	"beforeinput", "change", "formdata", "input", "invalid", "reset",
	"search", "submit", "toggle",

	// Scrolling, resizing and overflow.
	"resize", "scroll", "scrollend", "overflow", "underflow",

	// CSS animations and transitions.
	"animationcancel", "animationend", "animationiteration", "animationstart",
	"transitioncancel", "transitionend", "transitionrun", "transitionstart",

	// Media playback.
	"canplay", "canplaythrough", "cuechange", "durationchange", "emptied",
	"ended", "enterpictureinpicture", "leavepictureinpicture", "loadeddata",
	"loadedmetadata", "pause", "play", "playing", "ratechange", "seeked",
	"seeking", "stalled", "suspend", "timeupdate", "volumechange", "waiting",
	"encrypted", "waitingforkey",

	// Media capture and recording.
	"devicechange", "devicelight", "devicemotion", "deviceorientation",
	"deviceorientationabsolute", "deviceproximity", "userproximity", "mute",
	"unmute", "dataavailable", "stop",

	// Media source extensions.
	"addsourcebuffer", "removesourcebuffer", "sourceclose", "sourceended",
	"sourceopen", "update", "updateend", "updatestart",

	// Network, loading and messaging.
	"error", "loadend", "loadstart", "message", "messageerror", "offline",
	"online", "open", "close", "progress", "timeout",

	// Promise rejection.
	"rejectionhandled", "unhandledrejection",

	// Storage and databases.
	"storage", "blocked", "complete", "success", "upgradeneeded",
	"versionchange",

	// Service workers and app cache.
	"activate", "controllerchange", "fetch", "install", "statechange",
	"updatefound", "cached", "checking", "downloading", "noupdate",
	"obsolete", "updateready",

	// Push and notifications.
	"notificationclick", "notificationclose", "push",
	"pushsubscriptionchange",

	// WebRTC and media streams.
	"addstream", "addtrack", "bufferedamountlow", "closing",
	"connectionstatechange", "datachannel", "icecandidate",
	"icecandidateerror", "iceconnectionstatechange",
	"icegatheringstatechange", "negotiationneeded", "removestream",
	"removetrack", "signalingstatechange", "track", "isolationchange",
	"tonechange",

	// Speech recognition and synthesis.
	"audioend", "audiostart", "boundary", "end", "mark", "nomatch", "result",
	"resume", "soundend", "soundstart", "speechend", "speechstart", "start",
	"voiceschanged", "audioprocess",

	// Gamepad and sensors.
	"gamepadconnected", "gamepaddisconnected", "reading",

	// Battery and power.
	"chargingchange", "chargingtimechange", "dischargingtimechange",
	"levelchange",

	// Payments.
	"merchantvalidation", "payerdetailchange", "paymentmethodchange",
	"shippingaddresschange", "shippingoptionchange",

	// Fullscreen.
	"fullscreenchange", "fullscreenerror",

	// Security and shadow DOM.
	"securitypolicyviolation", "slotchange",

	// Canvas and WebGL contexts.
	"contextlost", "contextrestored", "webglcontextcreationerror",
	"webglcontextlost", "webglcontextrestored",

	// WebXR and VR displays.
	"beforexrselect", "inputsourceschange", "selectend", "squeeze",
	"squeezeend", "squeezestart", "vrdisplayactivate", "vrdisplayblur",
	"vrdisplayconnect", "vrdisplaydeactivate", "vrdisplaydisconnect",
	"vrdisplayfocus", "vrdisplaypointerrestricted",
	"vrdisplaypointerunrestricted", "vrdisplaypresentchange",

	// Legacy DOM mutation.
	"domactivate", "domattrmodified", "domcharacterdatamodified",
	"domfocusin", "domfocusout", "domnodeinserted",
	"domnodeinsertedintodocument", "domnoderemoved",
	"domnoderemovedfromdocument", "domsubtreemodified",

	// SVG and SMIL timing.
	"beginevent", "endevent", "repeatevent", "svgabort", "svgerror",
	"svgload", "svgresize", "svgscroll", "svgunload", "svgzoom",

	// Script execution (Gecko).
	"afterscriptexecute", "beforescriptexecute",

	// Gestures and legacy WebKit.
	"gesturechange", "gestureend", "gesturestart", "orientationchange",
	"resourcetimingbufferfull",

	// WebKit prefixed.
	"webkitanimationend", "webkitanimationiteration", "webkitanimationstart",
	"webkitfullscreenchange", "webkitfullscreenerror",
	"webkitmouseforcechanged", "webkitmouseforcedown", "webkitmouseforceup",
	"webkitmouseforcewillbegin", "webkittransitionend",

	// Mozilla prefixed.
	"mozfullscreenchange", "mozfullscreenerror", "mozpointerlockchange",
	"mozpointerlockerror",

	// Microsoft prefixed.
	"mscontentzoom", "msgesturechange", "msgesturedoubletap", "msgestureend",
	"msgesturehold", "msgesturestart", "msgesturetap", "msgotpointercapture",
	"msinertiastart", "mslostpointercapture", "msmanipulationstatechanged",
	"mspointercancel", "mspointerdown", "mspointerenter", "mspointerhover",
	"mspointerleave", "mspointermove", "mspointerout", "mspointerover",
	"mspointerup", "mssitemodejumplistitemremoved", "msthumbnailclick",
}

var reservedEventSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(reservedEventNames))
	for _, name := range reservedEventNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsReservedEventName reports whether name collides with a built-in
// platform event, ignoring letter case.
func IsReservedEventName(name string) bool {
	_, ok := reservedEventSet[strings.ToLower(name)]
	return ok
}
