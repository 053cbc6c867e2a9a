package sdkclient

// sdkVersion is stamped on every outgoing request via HeaderSDKVersion.
// Bump on release.
const sdkVersion = "golang:1.2.0"
