package gamepad

// Gamepad actions. Buttons and the d-pad come as press/release pairs; stick,
// trigger and axis actions are absolute states.
const (
	PressA                          Action = 1300
	ReleaseA                        Action = 1301
	PressB                          Action = 1302
	ReleaseB                        Action = 1303
	PressX                          Action = 1304
	ReleaseX                        Action = 1305
	PressY                          Action = 1306
	ReleaseY                        Action = 1307
	PressLeftBumper                 Action = 1308
	ReleaseLeftBumper               Action = 1309
	PressRightBumper                Action = 1310
	ReleaseRightBumper              Action = 1311
	PressLeftStick                  Action = 1312
	ReleaseLeftStick                Action = 1313
	PressRightStick                 Action = 1314
	ReleaseRightStick               Action = 1315
	PressMenu                       Action = 1316
	ReleaseMenu                     Action = 1317
	PressView                       Action = 1318
	ReleaseView                     Action = 1319
	PressHome                       Action = 1320
	ReleaseHome                     Action = 1321
	PressDpadUp                     Action = 1322
	ReleaseDpadUp                   Action = 1323
	PressDpadRight                  Action = 1324
	ReleaseDpadRight                Action = 1325
	PressDpadDown                   Action = 1326
	ReleaseDpadDown                 Action = 1327
	PressDpadLeft                   Action = 1328
	ReleaseDpadLeft                 Action = 1329
	ReleaseDpad                     Action = 1330
	LeftStickUp                     Action = 1331
	LeftStickUpRight                Action = 1332
	LeftStickRight                  Action = 1333
	LeftStickDownRight              Action = 1334
	LeftStickDown                   Action = 1335
	LeftStickDownLeft               Action = 1336
	LeftStickLeft                   Action = 1337
	LeftStickUpLeft                 Action = 1338
	LeftStickNeutral                Action = 1339
	RightStickUp                    Action = 1341
	RightStickUpRight               Action = 1342
	RightStickRight                 Action = 1343
	RightStickDownRight             Action = 1344
	RightStickDown                  Action = 1345
	RightStickDownLeft              Action = 1346
	RightStickLeft                  Action = 1347
	RightStickUpLeft                Action = 1348
	RightStickNeutral               Action = 1349
	PressLeftTrigger                Action = 1350
	ReleaseLeftTrigger              Action = 1351
	PressRightTrigger               Action = 1352
	ReleaseRightTrigger             Action = 1353
	HalfLeftTrigger                 Action = 1354
	ReleaseHalfLeftTrigger          Action = 1355
	HalfRightTrigger                Action = 1356
	ReleaseHalfRightTrigger         Action = 1357
	SetLeftStickHorizontalPlus100   Action = 1360
	SetLeftStickHorizontalMinus100  Action = 1361
	SetLeftStickVerticalPlus100     Action = 1362
	SetLeftStickVerticalMinus100    Action = 1363
	SetRightStickHorizontalPlus100  Action = 1364
	SetRightStickHorizontalMinus100 Action = 1365
	SetRightStickVerticalPlus100    Action = 1366
	SetRightStickVerticalMinus100   Action = 1367
	SetLeftStickHorizontalPlus75    Action = 1370
	SetLeftStickHorizontalMinus75   Action = 1371
	SetLeftStickVerticalPlus75      Action = 1372
	SetLeftStickVerticalMinus75     Action = 1373
	SetRightStickHorizontalPlus75   Action = 1374
	SetRightStickHorizontalMinus75  Action = 1375
	SetRightStickVerticalPlus75     Action = 1376
	SetRightStickVerticalMinus75    Action = 1377
	SetLeftStickHorizontalPlus50    Action = 1380
	SetLeftStickHorizontalMinus50   Action = 1381
	SetLeftStickVerticalPlus50      Action = 1382
	SetLeftStickVerticalMinus50     Action = 1383
	SetRightStickHorizontalPlus50   Action = 1384
	SetRightStickHorizontalMinus50  Action = 1385
	SetRightStickVerticalPlus50     Action = 1386
	SetRightStickVerticalMinus50    Action = 1387
	SetLeftStickHorizontalPlus25    Action = 1390
	SetLeftStickHorizontalMinus25   Action = 1391
	SetLeftStickVerticalPlus25      Action = 1392
	SetLeftStickVerticalMinus25     Action = 1393
	SetRightStickHorizontalPlus25   Action = 1394
	SetRightStickHorizontalMinus25  Action = 1395
	SetRightStickVerticalPlus25     Action = 1396
	SetRightStickVerticalMinus25    Action = 1397
	ReleaseAllAxes                  Action = 1398
	ReleaseAll                      Action = 1399
)

var names = map[Action]string{
	PressA:                          "PressA",
	ReleaseA:                        "ReleaseA",
	PressB:                          "PressB",
	ReleaseB:                        "ReleaseB",
	PressX:                          "PressX",
	ReleaseX:                        "ReleaseX",
	PressY:                          "PressY",
	ReleaseY:                        "ReleaseY",
	PressLeftBumper:                 "PressLeftBumper",
	ReleaseLeftBumper:               "ReleaseLeftBumper",
	PressRightBumper:                "PressRightBumper",
	ReleaseRightBumper:              "ReleaseRightBumper",
	PressLeftStick:                  "PressLeftStick",
	ReleaseLeftStick:                "ReleaseLeftStick",
	PressRightStick:                 "PressRightStick",
	ReleaseRightStick:               "ReleaseRightStick",
	PressMenu:                       "PressMenu",
	ReleaseMenu:                     "ReleaseMenu",
	PressView:                       "PressView",
	ReleaseView:                     "ReleaseView",
	PressHome:                       "PressHome",
	ReleaseHome:                     "ReleaseHome",
	PressDpadUp:                     "PressDpadUp",
	ReleaseDpadUp:                   "ReleaseDpadUp",
	PressDpadRight:                  "PressDpadRight",
	ReleaseDpadRight:                "ReleaseDpadRight",
	PressDpadDown:                   "PressDpadDown",
	ReleaseDpadDown:                 "ReleaseDpadDown",
	PressDpadLeft:                   "PressDpadLeft",
	ReleaseDpadLeft:                 "ReleaseDpadLeft",
	ReleaseDpad:                     "ReleaseDpad",
	LeftStickUp:                     "LeftStickUp",
	LeftStickUpRight:                "LeftStickUpRight",
	LeftStickRight:                  "LeftStickRight",
	LeftStickDownRight:              "LeftStickDownRight",
	LeftStickDown:                   "LeftStickDown",
	LeftStickDownLeft:               "LeftStickDownLeft",
	LeftStickLeft:                   "LeftStickLeft",
	LeftStickUpLeft:                 "LeftStickUpLeft",
	LeftStickNeutral:                "LeftStickNeutral",
	RightStickUp:                    "RightStickUp",
	RightStickUpRight:               "RightStickUpRight",
	RightStickRight:                 "RightStickRight",
	RightStickDownRight:             "RightStickDownRight",
	RightStickDown:                  "RightStickDown",
	RightStickDownLeft:              "RightStickDownLeft",
	RightStickLeft:                  "RightStickLeft",
	RightStickUpLeft:                "RightStickUpLeft",
	RightStickNeutral:               "RightStickNeutral",
	PressLeftTrigger:                "PressLeftTrigger",
	ReleaseLeftTrigger:              "ReleaseLeftTrigger",
	PressRightTrigger:               "PressRightTrigger",
	ReleaseRightTrigger:             "ReleaseRightTrigger",
	HalfLeftTrigger:                 "HalfLeftTrigger",
	ReleaseHalfLeftTrigger:          "ReleaseHalfLeftTrigger",
	HalfRightTrigger:                "HalfRightTrigger",
	ReleaseHalfRightTrigger:         "ReleaseHalfRightTrigger",
	SetLeftStickHorizontalPlus100:   "SetLeftStickHorizontalPlus100",
	SetLeftStickHorizontalMinus100:  "SetLeftStickHorizontalMinus100",
	SetLeftStickVerticalPlus100:     "SetLeftStickVerticalPlus100",
	SetLeftStickVerticalMinus100:    "SetLeftStickVerticalMinus100",
	SetRightStickHorizontalPlus100:  "SetRightStickHorizontalPlus100",
	SetRightStickHorizontalMinus100: "SetRightStickHorizontalMinus100",
	SetRightStickVerticalPlus100:    "SetRightStickVerticalPlus100",
	SetRightStickVerticalMinus100:   "SetRightStickVerticalMinus100",
	SetLeftStickHorizontalPlus75:    "SetLeftStickHorizontalPlus75",
	SetLeftStickHorizontalMinus75:   "SetLeftStickHorizontalMinus75",
	SetLeftStickVerticalPlus75:      "SetLeftStickVerticalPlus75",
	SetLeftStickVerticalMinus75:     "SetLeftStickVerticalMinus75",
	SetRightStickHorizontalPlus75:   "SetRightStickHorizontalPlus75",
	SetRightStickHorizontalMinus75:  "SetRightStickHorizontalMinus75",
	SetRightStickVerticalPlus75:     "SetRightStickVerticalPlus75",
	SetRightStickVerticalMinus75:    "SetRightStickVerticalMinus75",
	SetLeftStickHorizontalPlus50:    "SetLeftStickHorizontalPlus50",
	SetLeftStickHorizontalMinus50:   "SetLeftStickHorizontalMinus50",
	SetLeftStickVerticalPlus50:      "SetLeftStickVerticalPlus50",
	SetLeftStickVerticalMinus50:     "SetLeftStickVerticalMinus50",
	SetRightStickHorizontalPlus50:   "SetRightStickHorizontalPlus50",
	SetRightStickHorizontalMinus50:  "SetRightStickHorizontalMinus50",
	SetRightStickVerticalPlus50:     "SetRightStickVerticalPlus50",
	SetRightStickVerticalMinus50:    "SetRightStickVerticalMinus50",
	SetLeftStickHorizontalPlus25:    "SetLeftStickHorizontalPlus25",
	SetLeftStickHorizontalMinus25:   "SetLeftStickHorizontalMinus25",
	SetLeftStickVerticalPlus25:      "SetLeftStickVerticalPlus25",
	SetLeftStickVerticalMinus25:     "SetLeftStickVerticalMinus25",
	SetRightStickHorizontalPlus25:   "SetRightStickHorizontalPlus25",
	SetRightStickHorizontalMinus25:  "SetRightStickHorizontalMinus25",
	SetRightStickVerticalPlus25:     "SetRightStickVerticalPlus25",
	SetRightStickVerticalMinus25:    "SetRightStickVerticalMinus25",
	ReleaseAllAxes:                  "ReleaseAllAxes",
	ReleaseAll:                      "ReleaseAll",
}

// order lists every action in ascending code order.
var order = []Action{
	PressA,
	ReleaseA,
	PressB,
	ReleaseB,
	PressX,
	ReleaseX,
	PressY,
	ReleaseY,
	PressLeftBumper,
	ReleaseLeftBumper,
	PressRightBumper,
	ReleaseRightBumper,
	PressLeftStick,
	ReleaseLeftStick,
	PressRightStick,
	ReleaseRightStick,
	PressMenu,
	ReleaseMenu,
	PressView,
	ReleaseView,
	PressHome,
	ReleaseHome,
	PressDpadUp,
	ReleaseDpadUp,
	PressDpadRight,
	ReleaseDpadRight,
	PressDpadDown,
	ReleaseDpadDown,
	PressDpadLeft,
	ReleaseDpadLeft,
	ReleaseDpad,
	LeftStickUp,
	LeftStickUpRight,
	LeftStickRight,
	LeftStickDownRight,
	LeftStickDown,
	LeftStickDownLeft,
	LeftStickLeft,
	LeftStickUpLeft,
	LeftStickNeutral,
	RightStickUp,
	RightStickUpRight,
	RightStickRight,
	RightStickDownRight,
	RightStickDown,
	RightStickDownLeft,
	RightStickLeft,
	RightStickUpLeft,
	RightStickNeutral,
	PressLeftTrigger,
	ReleaseLeftTrigger,
	PressRightTrigger,
	ReleaseRightTrigger,
	HalfLeftTrigger,
	ReleaseHalfLeftTrigger,
	HalfRightTrigger,
	ReleaseHalfRightTrigger,
	SetLeftStickHorizontalPlus100,
	SetLeftStickHorizontalMinus100,
	SetLeftStickVerticalPlus100,
	SetLeftStickVerticalMinus100,
	SetRightStickHorizontalPlus100,
	SetRightStickHorizontalMinus100,
	SetRightStickVerticalPlus100,
	SetRightStickVerticalMinus100,
	SetLeftStickHorizontalPlus75,
	SetLeftStickHorizontalMinus75,
	SetLeftStickVerticalPlus75,
	SetLeftStickVerticalMinus75,
	SetRightStickHorizontalPlus75,
	SetRightStickHorizontalMinus75,
	SetRightStickVerticalPlus75,
	SetRightStickVerticalMinus75,
	SetLeftStickHorizontalPlus50,
	SetLeftStickHorizontalMinus50,
	SetLeftStickVerticalPlus50,
	SetLeftStickVerticalMinus50,
	SetRightStickHorizontalPlus50,
	SetRightStickHorizontalMinus50,
	SetRightStickVerticalPlus50,
	SetRightStickVerticalMinus50,
	SetLeftStickHorizontalPlus25,
	SetLeftStickHorizontalMinus25,
	SetLeftStickVerticalPlus25,
	SetLeftStickVerticalMinus25,
	SetRightStickHorizontalPlus25,
	SetRightStickHorizontalMinus25,
	SetRightStickVerticalPlus25,
	SetRightStickVerticalMinus25,
	ReleaseAllAxes,
	ReleaseAll,
}
